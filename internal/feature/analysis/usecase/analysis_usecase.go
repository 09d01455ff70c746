// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"thumblytics/internal/feature/analysis/domain"
	"thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/shared/youtube"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// ThumbnailAnalyzer は外部解析エンドポイントを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ThumbnailAnalyzer interface {
	// AnalyzeThumbnail は入力を1回だけ解析APIに送信し、解析結果を返します。
	AnalyzeThumbnail(ctx context.Context, in entity.Input) (*entity.AnalysisResult, error)
}

// HistoryRecorder は解析履歴の記録先を抽象化します。
type HistoryRecorder interface {
	// Record は解析1件分の履歴を先頭に追加します。
	Record(ctx context.Context, source, thumbnail string, score float64) error
}

// analysisUsecase はサムネイル解析のビジネスロジックを提供します。
type analysisUsecase struct {
	analyzer ThumbnailAnalyzer
	history  HistoryRecorder
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// historyがnilの場合、履歴は記録しません。
func NewAnalysisUsecase(analyzer ThumbnailAnalyzer, history HistoryRecorder) *analysisUsecase {
	return &analysisUsecase{analyzer: analyzer, history: history}
}

// Validate は入力がURLとファイルのどちらか一方だけを持つことを検証します。
func Validate(in entity.Input) error {
	if in.HasURL() == in.HasFile() {
		return domain.ErrInvalidInput
	}
	if in.HasFile() && len(in.File.Data) > MaxImageSize {
		return fmt.Errorf("%w: image size exceeds maximum of %d bytes", domain.ErrInvalidInput, MaxImageSize)
	}
	return nil
}

// Analyze は入力を検証して解析APIを呼び出し、成功した場合は履歴に記録します。
// 解析は完全に成功するか失敗するかのどちらかで、部分的な結果は返しません。
func (u *analysisUsecase) Analyze(ctx context.Context, in entity.Input) (*entity.AnalysisResult, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	result, err := u.analyzer.AnalyzeThumbnail(ctx, in)
	if err != nil {
		return nil, err
	}

	if u.history != nil {
		// 履歴の記録失敗は解析結果に影響させない
		if err := u.history.Record(ctx, in.Source(), thumbnailRef(in), result.AttractivenessScore); err != nil {
			slog.Warn("failed to record analysis history", "source", in.Source(), "error", err)
		}
	}
	return result, nil
}

// thumbnailRef は履歴に保存するサムネイル参照を返します。
// YouTube URLの場合は最高解像度サムネイルのURL、アップロードの場合はファイル名です。
func thumbnailRef(in entity.Input) string {
	if in.HasURL() {
		if u, ok := youtube.ThumbnailURL(in.YouTubeURL); ok {
			return u
		}
	}
	return in.Source()
}
