package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	comparisonentity "thumblytics/internal/feature/comparison/domain/entity"
	comparisonusecase "thumblytics/internal/feature/comparison/usecase"
)

type mockAnalyzer struct {
	AnalyzeThumbnailFunc func(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error)
}

func (m *mockAnalyzer) AnalyzeThumbnail(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error) {
	return m.AnalyzeThumbnailFunc(ctx, in)
}

func TestParseInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "thumb.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	in, err := parseInput(path)
	require.NoError(t, err)
	require.NotNil(t, in.File)
	assert.Equal(t, "thumb.png", in.File.Name)
	assert.Equal(t, []byte("png-bytes"), in.File.Data)
	assert.Empty(t, in.YouTubeURL)

	in, err = parseInput("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", in.YouTubeURL)
	assert.Nil(t, in.File)

	// ディレクトリはURLとして扱う
	in, err = parseInput(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, in.YouTubeURL)
}

func TestRun(t *testing.T) {
	t.Parallel()

	strong := &analysisentity.AnalysisResult{AttractivenessScore: 90, ContrastLevel: 80, AverageBrightness: 154, WordCount: 4}
	weak := &analysisentity.AnalysisResult{AttractivenessScore: 40, ContrastLevel: 30, AverageBrightness: 60, WordCount: 12}

	tests := []struct {
		name       string
		args       []string
		analyze    func(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error)
		wantCode   int
		wantWinner comparisonentity.Winner
	}{
		{
			name: "both sides succeed",
			args: []string{"-a", "https://youtu.be/aaaaaaaaaaa", "-b", "https://youtu.be/bbbbbbbbbbb"},
			analyze: func(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error) {
				if in.YouTubeURL == "https://youtu.be/aaaaaaaaaaa" {
					return strong, nil
				}
				return weak, nil
			},
			wantCode:   0,
			wantWinner: comparisonentity.WinnerA,
		},
		{
			name: "one side fails",
			args: []string{"-a", "https://youtu.be/aaaaaaaaaaa", "-b", "https://youtu.be/bbbbbbbbbbb"},
			analyze: func(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error) {
				if in.YouTubeURL == "https://youtu.be/bbbbbbbbbbb" {
					return nil, errors.New("upstream down")
				}
				return strong, nil
			},
			wantCode: 1,
		},
		{
			name:     "missing flag",
			args:     []string{"-a", "https://youtu.be/aaaaaaaaaaa"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &mockAnalyzer{AnalyzeThumbnailFunc: tt.analyze}, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)

			if tt.wantCode == 2 {
				assert.Contains(t, stderr.String(), errUsage.Error())
				return
			}

			var snap comparisonusecase.PairSnapshot
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &snap))
			if tt.wantCode == 0 {
				require.NotNil(t, snap.Comparison)
				assert.Equal(t, tt.wantWinner, snap.Comparison.Winner)
			} else {
				assert.Nil(t, snap.Comparison)
				assert.Equal(t, "upstream down", snap.B.Error)
				assert.NotNil(t, snap.A.Result)
			}
		})
	}
}
