// Package grading はスコアや検出結果を表示用の値（グレード、色、絵文字、位置）に変換します。
package grading

import "strings"

// Grade はスコアを文字グレードに変換します。
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// スコア表示色
const (
	ColorGreen  = "#22c55e"
	ColorYellow = "#eab308"
	ColorOrange = "#f97316"
	ColorRed    = "#ef4444"
)

// ScoreColor はスコアの表示色を返します。
func ScoreColor(score float64) string {
	switch {
	case score >= 80:
		return ColorGreen
	case score >= 60:
		return ColorYellow
	case score >= 40:
		return ColorOrange
	default:
		return ColorRed
	}
}

// DefaultEmoji は感情が不明、または未検出の場合の絵文字です。
const DefaultEmoji = "🙂"

var emotionEmoji = map[string]string{
	"happy":      "😊",
	"excited":    "🤩",
	"shocked":    "😲",
	"surprised":  "😲",
	"angry":      "😠",
	"sad":        "😢",
	"fear":       "😨",
	"determined": "😤",
	"smirking":   "😏",
	"neutral":    "😐",
}

// EmotionEmoji は感情ラベルに対応する絵文字を返します。大文字小文字は区別しません。
func EmotionEmoji(label string) string {
	if e, ok := emotionEmoji[strings.ToLower(strings.TrimSpace(label))]; ok {
		return e
	}
	return DefaultEmoji
}
