// Package handler はexportフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"thumblytics/internal/api"
	analysisdomain "thumblytics/internal/feature/analysis/domain"
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	analysisusecase "thumblytics/internal/feature/analysis/usecase"
	comparisonentity "thumblytics/internal/feature/comparison/domain/entity"
	"thumblytics/internal/feature/export/domain"
	"thumblytics/internal/feature/export/transport/http/dto"
)

// ExportUsecase はエクスポートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ExportUsecase interface {
	SnapshotJSON(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error)
	AnnotatePNG(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error)
}

// ExportHandler はエクスポートのHTTPリクエストを処理します。
type ExportHandler struct {
	uc  ExportUsecase
	now func() time.Time
}

// NewExportHandler はExportHandlerの新しいインスタンスを生成します。
func NewExportHandler(uc ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc, now: time.Now}
}

// JSON は解析結果（と任意の比較結果）をJSONファイルとしてダウンロードさせます。
//
// エンドポイント: POST /v1/export/json
// Content-Type: application/json
// ボディ: {"analysis": AnalysisResult, "comparison": ComparisonResult（任意）}
func (h *ExportHandler) JSON(c *gin.Context) {
	var req dto.ExportJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("export request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "analysis result is required"})
		return
	}

	data, err := h.uc.SnapshotJSON(req.Analysis, req.Comparison)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", h.attachment("json"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// PNG はサムネイルに検出オブジェクトを描画したPNGを返します。
//
// エンドポイント: POST /v1/export/png
// Content-Type: multipart/form-data
// フィールド: youtube_url または file、result（AnalysisResultのJSON）
func (h *ExportHandler) PNG(c *gin.Context) {
	in, err := api.ReadInput(c, "youtube_url", "file", analysisusecase.MaxImageSize)
	if err != nil {
		slog.Warn("failed to read export input", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		return
	}

	var result analysisentity.AnalysisResult
	if err := json.Unmarshal([]byte(c.PostForm("result")), &result); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "result must be an analysis result JSON"})
		return
	}

	data, err := h.uc.AnnotatePNG(c.Request.Context(), in, result)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", h.attachment("png"))
	c.Data(http.StatusOK, "image/png", data)
}

func (h *ExportHandler) attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="thumblytics-%s.%s"`, h.now().UTC().Format("20060102-150405"), ext)
}

func (h *ExportHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, analysisdomain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidImage):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrImageUnavailable):
		status = http.StatusBadGateway
	}
	if status >= http.StatusInternalServerError {
		slog.Error("export failed", "error", err)
	}
	c.JSON(status, api.ErrorResponse{Error: err.Error()})
}
