// Package dto defines data transfer objects for the analysis API responses.
package dto

import "encoding/json"

// AnalyzeResponse represents the JSON response of POST /analyze-thumbnail.
type AnalyzeResponse struct {
	AverageBrightness   float64          `json:"average_brightness"`
	ContrastLevel       float64          `json:"contrast_level"`
	DominantColors      []string         `json:"dominant_colors"`
	WordCount           int              `json:"word_count"`
	TextContent         string           `json:"text_content"`
	FaceCount           int              `json:"face_count"`
	DetectedEmotion     *string          `json:"detected_emotion"`
	DetectedObjects     []DetectedObject `json:"detected_objects"`
	AttractivenessScore float64          `json:"attractiveness_score"`
	AISuggestions       []string         `json:"ai_suggestions"`
}

// DetectedObject is a single detection in AnalyzeResponse.
type DetectedObject struct {
	Label             string    `json:"label"`
	Confidence        float64   `json:"confidence"`
	BBox              []float64 `json:"bbox"`
	BBoxNormalized    []float64 `json:"bbox_normalized,omitempty"`
	ContrastScoreVsBG float64   `json:"contrast_score_vs_bg"`
	Position          string    `json:"position,omitempty"`
	ElementType       string    `json:"element_type,omitempty"`
	Emotion           string    `json:"emotion,omitempty"`
}

// ErrorResponse is the error body of a non-2xx response. Detail is usually a string,
// but request validation failures carry a list of objects instead.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}
