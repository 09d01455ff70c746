// Package dto はanalysisフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import (
	"thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/shared/grading"
)

// AnalysisResponse は解析結果に表示用の派生値を加えたレスポンスDTOです。
type AnalysisResponse struct {
	entity.AnalysisResult
	Grade        string `json:"grade"`         // 魅力度スコアのグレード
	ScoreColor   string `json:"score_color"`   // 魅力度スコアの表示色
	EmotionEmoji string `json:"emotion_emoji"` // 感情の絵文字
}

// NewAnalysisResponse は解析結果からレスポンスDTOを生成します。
// 位置が未設定の検出オブジェクトにはbboxから算出した位置を補います。
func NewAnalysisResponse(r entity.AnalysisResult) AnalysisResponse {
	objs := make([]entity.DetectedObject, 0, len(r.DetectedObjects))
	for _, o := range r.DetectedObjects {
		if o.Position == "" {
			o.Position = grading.Position(o.BBox)
		}
		objs = append(objs, o)
	}
	r.DetectedObjects = objs

	return AnalysisResponse{
		AnalysisResult: r,
		Grade:          grading.Grade(r.AttractivenessScore),
		ScoreColor:     grading.ScoreColor(r.AttractivenessScore),
		EmotionEmoji:   grading.EmotionEmoji(r.Emotion()),
	}
}
