// Package youtube extracts video ids and thumbnail URLs from YouTube links.
package youtube

import (
	"fmt"
	"regexp"
)

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^"&?/\s]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([^"&?/\s]{11})`),
	regexp.MustCompile(`youtube\.com/v/([^"&?/\s]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([^"&?/\s]{11})`),
}

// VideoID returns the 11 character video id embedded in a YouTube URL.
func VideoID(videoURL string) (string, bool) {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(videoURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ThumbnailURL returns the maxresdefault thumbnail URL for a YouTube video URL.
func ThumbnailURL(videoURL string) (string, bool) {
	id, ok := VideoID(videoURL)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id), true
}
