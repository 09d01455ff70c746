// Package usecase はexportフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	analysisdomain "thumblytics/internal/feature/analysis/domain"
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	comparisonentity "thumblytics/internal/feature/comparison/domain/entity"
	comparisonusecase "thumblytics/internal/feature/comparison/usecase"
	"thumblytics/internal/feature/export/domain"
	"thumblytics/internal/shared/grading"
	"thumblytics/internal/shared/youtube"
)

// ImageFetcher はURLから画像をダウンロードします。
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Snapshot はJSONエクスポートの文書です。
type Snapshot struct {
	ExportedAt     time.Time                          `json:"exported_at"`
	Analysis       analysisentity.AnalysisResult      `json:"analysis"`
	CompositeScore float64                            `json:"composite_score"`
	Grade          string                             `json:"grade"`
	ScoreColor     string                             `json:"score_color"`
	EmotionEmoji   string                             `json:"emotion_emoji"`
	Comparison     *comparisonentity.ComparisonResult `json:"comparison,omitempty"`
	MetricWinners  []MetricWinner                     `json:"metric_winners,omitempty"`
}

// MetricWinner は比較の指標ごとの勝者です。指標の並びは固定です。
type MetricWinner struct {
	Metric comparisonentity.Metric `json:"metric"`
	Winner comparisonentity.Winner `json:"winner"`
}

// exportUsecase は解析結果のエクスポートを提供します。
type exportUsecase struct {
	fetcher ImageFetcher
	now     func() time.Time
}

// NewExportUsecase はexportUsecaseの新しいインスタンスを生成します。
func NewExportUsecase(fetcher ImageFetcher) *exportUsecase {
	return &exportUsecase{fetcher: fetcher, now: time.Now}
}

// BuildSnapshot は解析結果と任意の比較結果からエクスポート文書を組み立てます。
func (u *exportUsecase) BuildSnapshot(result analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) Snapshot {
	return Snapshot{
		ExportedAt:     u.now().UTC(),
		Analysis:       result,
		CompositeScore: comparisonusecase.CompositeScore(result),
		Grade:          grading.Grade(result.AttractivenessScore),
		ScoreColor:     grading.ScoreColor(result.AttractivenessScore),
		EmotionEmoji:   grading.EmotionEmoji(result.Emotion()),
		Comparison:     comparison,
		MetricWinners:  metricWinners(comparison),
	}
}

func metricWinners(c *comparisonentity.ComparisonResult) []MetricWinner {
	if c == nil {
		return nil
	}
	out := make([]MetricWinner, 0, len(comparisonentity.Metrics))
	for _, m := range comparisonentity.Metrics {
		if mc, ok := c.MetricBreakdown.Get(m); ok {
			out = append(out, MetricWinner{Metric: m, Winner: mc.Winner})
		}
	}
	return out
}

// SnapshotJSON はエクスポート文書をインデント付きJSONで返します。
func (u *exportUsecase) SnapshotJSON(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: analysis result is required", analysisdomain.ErrInvalidInput)
	}
	return json.MarshalIndent(u.BuildSnapshot(*result, comparison), "", "  ")
}

// AnnotatePNG は入力の画像に検出オブジェクトを描画したPNGを返します。
// YouTube URLの場合は最高解像度のサムネイルをダウンロードします。
func (u *exportUsecase) AnnotatePNG(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
	data, err := u.image(ctx, in)
	if err != nil {
		return nil, err
	}
	return Annotate(data, result)
}

func (u *exportUsecase) image(ctx context.Context, in analysisentity.Input) ([]byte, error) {
	if in.HasURL() == in.HasFile() {
		return nil, analysisdomain.ErrInvalidInput
	}
	if in.HasFile() {
		return in.File.Data, nil
	}

	thumb, ok := youtube.ThumbnailURL(in.YouTubeURL)
	if !ok {
		return nil, fmt.Errorf("%w: not a YouTube video URL", analysisdomain.ErrInvalidInput)
	}
	data, err := u.fetcher.Fetch(ctx, thumb)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageUnavailable, err)
	}
	return data, nil
}
