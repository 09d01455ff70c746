// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

// AnalysisResult は外部解析エンドポイントが返すサムネイル解析結果です。
// JSONのフィールド名はエンドポイントとのワイヤ契約のため変更しないこと。
type AnalysisResult struct {
	AverageBrightness   float64          `json:"average_brightness"`   // 平均輝度（0〜255）
	ContrastLevel       float64          `json:"contrast_level"`       // コントラスト（0〜100）
	DominantColors      []string         `json:"dominant_colors"`      // 支配色（"#rrggbb"、支配度順）
	WordCount           int              `json:"word_count"`           // OCRで認識した単語数
	TextContent         string           `json:"text_content"`         // OCRで認識したテキスト
	FaceCount           int              `json:"face_count"`           // 検出した顔の数
	DetectedEmotion     *string          `json:"detected_emotion"`     // 支配的な感情（顔がある場合のみ有効）
	DetectedObjects     []DetectedObject `json:"detected_objects"`     // 検出オブジェクト
	AttractivenessScore float64          `json:"attractiveness_score"` // 魅力度スコア（0〜100）
	AISuggestions       []string         `json:"ai_suggestions"`       // AIによる改善提案
}

// DetectedObject は画像内で検出された1つの要素を表します。
type DetectedObject struct {
	Label             string    `json:"label"`
	Confidence        float64   `json:"confidence"`           // 0.0 ~ 1.0
	BBox              []float64 `json:"bbox"`                 // [xmin, ymin, xmax, ymax]（正規化座標）
	ContrastScoreVsBG float64   `json:"contrast_score_vs_bg"` // 背景とのコントラスト（0.0 ~ 1.0）
	Position          string    `json:"position,omitempty"`
	ElementType       string    `json:"element_type,omitempty"`
	Emotion           string    `json:"emotion,omitempty"`
}

// HasFace は1つ以上の顔が検出されているかを返します。
func (r AnalysisResult) HasFace() bool {
	return r.FaceCount > 0
}

// Emotion は検出された感情を返します。顔がない、または感情がない場合は空文字です。
func (r AnalysisResult) Emotion() string {
	if r.FaceCount <= 0 || r.DetectedEmotion == nil {
		return ""
	}
	return *r.DetectedEmotion
}
