package usecase

import (
	"math"
	"strings"

	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
)

const (
	// OptimalBrightness は最適とみなす平均輝度です。
	OptimalBrightness = 154.0
	// brightnessDivisor は輝度の偏差を0〜100に正規化する除数です。
	brightnessDivisor = 154.0

	// MinIdealWords と MaxIdealWords はサムネイル内テキストの理想的な単語数の範囲です。
	MinIdealWords = 3
	MaxIdealWords = 7

	// FaceBonusExpressive は感情が読み取れる（neutral以外の）顔がある場合のボーナスです。
	FaceBonusExpressive = 10.0
	// FaceBonusNeutral は顔があるが感情がない、またはneutralの場合のボーナスです。
	FaceBonusNeutral = 5.0
)

// 合成スコアの重み。最初の4つの合計は0.9で、顔ボーナスは最大1ポイントを加算する。
// このため合成スコアの最大値は91になる（上限でクリップしない）。
const (
	WeightAttractiveness = 0.40
	WeightContrast       = 0.20
	WeightBrightness     = 0.15
	WeightWordCount      = 0.15
	WeightFaceBonus      = 0.10
)

// SubScores は1つの解析結果から算出した重み付け前のサブスコアです。
type SubScores struct {
	Attractiveness float64
	Contrast       float64
	Brightness     float64
	WordCount      float64
	FaceBonus      float64
}

// BrightnessScore は平均輝度が最適値154からどれだけ離れているかを0〜100で評価します。
func BrightnessScore(brightness float64) float64 {
	return math.Max(0, 100-math.Abs(brightness-OptimalBrightness)/brightnessDivisor*100)
}

// WordCountScore は単語数を評価します。3〜7語は100、少なすぎる・多すぎる場合は減点します。
func WordCountScore(words int) float64 {
	switch {
	case words < MinIdealWords:
		if words <= 0 {
			return 0
		}
		return float64(words) / MinIdealWords * 100
	case words > MaxIdealWords:
		return math.Max(0, 100-float64(words-MaxIdealWords)*10)
	default:
		return 100
	}
}

// FaceBonus は顔の有無と感情に応じたボーナス（0, 5, 10）を返します。
func FaceBonus(r analysisentity.AnalysisResult) float64 {
	if !r.HasFace() {
		return 0
	}
	emotion := strings.TrimSpace(r.Emotion())
	if emotion != "" && !strings.EqualFold(emotion, "neutral") {
		return FaceBonusExpressive
	}
	return FaceBonusNeutral
}

// ComputeSubScores は解析結果からサブスコアを算出します。
func ComputeSubScores(r analysisentity.AnalysisResult) SubScores {
	return SubScores{
		Attractiveness: r.AttractivenessScore,
		Contrast:       r.ContrastLevel,
		Brightness:     BrightnessScore(r.AverageBrightness),
		WordCount:      WordCountScore(r.WordCount),
		FaceBonus:      FaceBonus(r),
	}
}

// Composite はサブスコアの重み付き合計を返します。
func (s SubScores) Composite() float64 {
	return WeightAttractiveness*s.Attractiveness +
		WeightContrast*s.Contrast +
		WeightBrightness*s.Brightness +
		WeightWordCount*s.WordCount +
		WeightFaceBonus*s.FaceBonus
}

// CompositeScore は解析結果の合成スコア（0〜91）を返します。
func CompositeScore(r analysisentity.AnalysisResult) float64 {
	return ComputeSubScores(r).Composite()
}

// round1 は小数第1位に丸めます。
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
