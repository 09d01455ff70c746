// Package dto はcomparisonフィーチャーのHTTPリクエストDTOを定義します。
package dto

import analysisentity "thumblytics/internal/feature/analysis/domain/entity"

// CompareRequest は解析済みの2つの結果を比較するリクエストです。
type CompareRequest struct {
	A *analysisentity.AnalysisResult `json:"a" binding:"required"`
	B *analysisentity.AnalysisResult `json:"b" binding:"required"`
}
