package youtube

import "testing"

func TestThumbnailURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"watch url with extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", true},
		{"id too short", "https://youtu.be/abc", "", false},
		{"not youtube", "https://example.com/video.mp4", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ThumbnailURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
