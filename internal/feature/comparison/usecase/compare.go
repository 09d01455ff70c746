// Package usecase はcomparisonフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"fmt"
	"math"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/comparison/domain/entity"
)

const (
	// recommendationThresholdAttractiveness を下回ると構図の改善を提案します。
	recommendationThresholdAttractiveness = 70
	// recommendationThresholdContrast を下回るとコントラストの改善を提案します。
	recommendationThresholdContrast = 50
)

// 提案文。順序は固定で、魅力度・コントラスト・単語数・顔の順に出力する。
const (
	RecommendationTie            = "Both thumbnails are equally strong!"
	RecommendationAttractiveness = "Improve the visual composition of Thumbnail %s: its attractiveness score is below 70."
	RecommendationContrast       = "Increase the contrast of Thumbnail %s so the subject stands out from the background."
	RecommendationWordCount      = "Aim for 3-7 words of text on Thumbnail %s for better readability."
	RecommendationFace           = "Add a face to Thumbnail %s: thumbnails with expressive faces tend to get more clicks."
)

// Compare は2つの解析結果を順位付けし、その理由を返します。
// I/Oも副作用も持たない純粋関数で、同じ入力には常に同じ結果を返します。
func Compare(a, b analysisentity.AnalysisResult) entity.ComparisonResult {
	sa := ComputeSubScores(a)
	sb := ComputeSubScores(b)

	// 勝者は丸める前の合成スコアで決める。丸めるのは表示用の値だけ
	winner := pick(sa.Composite(), sb.Composite())

	scoreA := round1(sa.Composite())
	scoreB := round1(sb.Composite())

	return entity.ComparisonResult{
		Winner:          winner,
		ScoreA:          scoreA,
		ScoreB:          scoreB,
		ScoreDifference: round1(math.Abs(scoreA - scoreB)),
		MetricBreakdown: breakdown(a, b, sa, sb),
		Recommendations: recommend(winner, a, b),
	}
}

// pick は厳密な大小比較で勝者を決め、等しければTIEを返します。
func pick(a, b float64) entity.Winner {
	switch {
	case a > b:
		return entity.WinnerA
	case b > a:
		return entity.WinnerB
	default:
		return entity.WinnerTie
	}
}

// pickPresence は顔の有無で勝者を決めます。片方だけに顔がある場合のみ勝者になります。
func pickPresence(a, b bool) entity.Winner {
	switch {
	case a && !b:
		return entity.WinnerA
	case b && !a:
		return entity.WinnerB
	default:
		return entity.WinnerTie
	}
}

func breakdown(a, b analysisentity.AnalysisResult, sa, sb SubScores) entity.MetricBreakdown {
	return entity.MetricBreakdown{
		Attractiveness: entity.MetricComparison{
			ValueA: a.AttractivenessScore, ValueB: b.AttractivenessScore,
			ScoreA: sa.Attractiveness, ScoreB: sb.Attractiveness,
			Winner: pick(sa.Attractiveness, sb.Attractiveness),
		},
		Contrast: entity.MetricComparison{
			ValueA: a.ContrastLevel, ValueB: b.ContrastLevel,
			ScoreA: sa.Contrast, ScoreB: sb.Contrast,
			Winner: pick(sa.Contrast, sb.Contrast),
		},
		Brightness: entity.MetricComparison{
			ValueA: a.AverageBrightness, ValueB: b.AverageBrightness,
			ScoreA: round1(sa.Brightness), ScoreB: round1(sb.Brightness),
			Winner: pick(sa.Brightness, sb.Brightness),
		},
		WordCount: entity.MetricComparison{
			ValueA: float64(a.WordCount), ValueB: float64(b.WordCount),
			ScoreA: round1(sa.WordCount), ScoreB: round1(sb.WordCount),
			Winner: pick(sa.WordCount, sb.WordCount),
		},
		FacePresence: entity.MetricComparison{
			ValueA: float64(a.FaceCount), ValueB: float64(b.FaceCount),
			ScoreA: sa.FaceBonus, ScoreB: sb.FaceBonus,
			Winner: pickPresence(a.HasFace(), b.HasFace()),
		},
	}
}

// recommend は敗者側の生の値を4つの閾値と比較し、改善提案を固定順で返します。
func recommend(winner entity.Winner, a, b analysisentity.AnalysisResult) []string {
	var loser analysisentity.AnalysisResult
	var side string
	switch winner {
	case entity.WinnerA:
		loser, side = b, "B"
	case entity.WinnerB:
		loser, side = a, "A"
	default:
		return []string{RecommendationTie}
	}

	out := make([]string, 0, 4)
	if loser.AttractivenessScore < recommendationThresholdAttractiveness {
		out = append(out, fmt.Sprintf(RecommendationAttractiveness, side))
	}
	if loser.ContrastLevel < recommendationThresholdContrast {
		out = append(out, fmt.Sprintf(RecommendationContrast, side))
	}
	if loser.WordCount < MinIdealWords || loser.WordCount > MaxIdealWords {
		out = append(out, fmt.Sprintf(RecommendationWordCount, side))
	}
	if !loser.HasFace() && (a.HasFace() || b.HasFace()) {
		out = append(out, fmt.Sprintf(RecommendationFace, side))
	}
	return out
}
