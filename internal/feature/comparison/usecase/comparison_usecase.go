package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/comparison/domain/entity"
)

// Analyzer はサムネイル1件の解析を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Analyzer interface {
	Analyze(ctx context.Context, in analysisentity.Input) (*analysisentity.AnalysisResult, error)
}

// comparisonUsecase はサムネイル比較のユースケースを提供します。
type comparisonUsecase struct {
	analyzer Analyzer
}

// NewComparisonUsecase はcomparisonUsecaseの新しいインスタンスを生成します。
func NewComparisonUsecase(analyzer Analyzer) *comparisonUsecase {
	return &comparisonUsecase{analyzer: analyzer}
}

// Compare は解析済みの2つの結果を比較します。
func (u *comparisonUsecase) Compare(a, b analysisentity.AnalysisResult) entity.ComparisonResult {
	return Compare(a, b)
}

// CompareInputs は2つの入力を並行して解析し、両側が成功した場合に比較結果を含むスナップショットを返します。
// 各側はそれぞれ独立したリクエストとエラー状態を持ち、片側の失敗がもう片側をキャンセルすることはありません。
func (u *comparisonUsecase) CompareInputs(ctx context.Context, inA, inB analysisentity.Input) PairSnapshot {
	pair := NewPair()

	// 片側のエラーでもう片側をキャンセルしない
	var g errgroup.Group
	for _, s := range []struct {
		side Side
		in   analysisentity.Input
	}{{SideA, inA}, {SideB, inB}} {
		g.Go(func() error {
			res, err := u.analyzer.Analyze(ctx, s.in)
			if err != nil {
				slog.Warn("comparison side failed", "side", s.side, "source", s.in.Source(), "error", err)
			}
			pair.Set(s.side, res, err)
			return nil
		})
	}
	_ = g.Wait()

	return pair.Snapshot()
}
