// Package dto はexportフィーチャーのHTTPリクエストDTOを定義します。
package dto

import (
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	comparisonentity "thumblytics/internal/feature/comparison/domain/entity"
)

// ExportJSONRequest はJSONエクスポートのリクエストです。comparisonは任意です。
type ExportJSONRequest struct {
	Analysis   *analysisentity.AnalysisResult     `json:"analysis" binding:"required"`
	Comparison *comparisonentity.ComparisonResult `json:"comparison"`
}
