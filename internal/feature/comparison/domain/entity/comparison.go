// Package entity はcomparisonフィーチャーのドメインモデルを定義します。
package entity

// Winner は比較の勝者を表します。
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "TIE"
)

// Metric は比較対象の指標名です。
type Metric string

const (
	MetricAttractiveness Metric = "attractiveness"
	MetricContrast       Metric = "contrast"
	MetricBrightness     Metric = "brightness"
	MetricWordCount      Metric = "wordCount"
	MetricFacePresence   Metric = "facePresence"
)

// Metrics は内訳に含まれる指標を固定順で列挙します。
var Metrics = []Metric{
	MetricAttractiveness,
	MetricContrast,
	MetricBrightness,
	MetricWordCount,
	MetricFacePresence,
}

// MetricComparison は1つの指標についての両サイドの値と勝者です。
// Value は生の値、Score は重み付け前のサブスコア（顔はボーナス値）です。
type MetricComparison struct {
	ValueA float64 `json:"valueA"`
	ValueB float64 `json:"valueB"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Winner Winner  `json:"winner"`
}

// MetricBreakdown は5つの指標の比較結果です。
type MetricBreakdown struct {
	Attractiveness MetricComparison `json:"attractiveness"`
	Contrast       MetricComparison `json:"contrast"`
	Brightness     MetricComparison `json:"brightness"`
	WordCount      MetricComparison `json:"wordCount"`
	FacePresence   MetricComparison `json:"facePresence"`
}

// Get は指標名に対応する比較結果を返します。
func (b MetricBreakdown) Get(m Metric) (MetricComparison, bool) {
	switch m {
	case MetricAttractiveness:
		return b.Attractiveness, true
	case MetricContrast:
		return b.Contrast, true
	case MetricBrightness:
		return b.Brightness, true
	case MetricWordCount:
		return b.WordCount, true
	case MetricFacePresence:
		return b.FacePresence, true
	}
	return MetricComparison{}, false
}

// ComparisonResult は2つの解析結果の比較結果です。入力が変わるたびに再計算され、永続化されません。
type ComparisonResult struct {
	Winner          Winner          `json:"winner"`
	ScoreA          float64         `json:"scoreA"`
	ScoreB          float64         `json:"scoreB"`
	ScoreDifference float64         `json:"scoreDifference"`
	MetricBreakdown MetricBreakdown `json:"metricBreakdown"`
	Recommendations []string        `json:"recommendations"`
}
