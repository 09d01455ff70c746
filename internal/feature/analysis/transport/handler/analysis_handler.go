// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"thumblytics/internal/api"
	"thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/analysis/transport/http/dto"
	"thumblytics/internal/feature/analysis/usecase"
)

// AnalysisUsecase はサムネイル解析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, in entity.Input) (*entity.AnalysisResult, error)
}

// AnalysisHandler はサムネイル解析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze はYouTube URLまたは画像ファイルを受け取り、解析結果を返します。
//
// エンドポイント: POST /v1/analyze
// Content-Type: multipart/form-data
// フィールド: youtube_url または file（画像ファイル、最大10MB）
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	in, err := api.ReadInput(c, "youtube_url", "file", usecase.MaxImageSize)
	if err != nil {
		slog.Warn("failed to read analysis input", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		return
	}

	result, err := h.uc.Analyze(c.Request.Context(), in)
	if err != nil {
		status := api.ErrorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("thumbnail analysis failed", "error", err, "source", in.Source())
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalysisResponse(*result))
}
