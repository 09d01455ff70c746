// Package handler はcomparisonフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"thumblytics/internal/api"
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	analysisusecase "thumblytics/internal/feature/analysis/usecase"
	"thumblytics/internal/feature/comparison/domain/entity"
	"thumblytics/internal/feature/comparison/transport/http/dto"
	"thumblytics/internal/feature/comparison/usecase"
)

// ComparisonUsecase はサムネイル比較のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ComparisonUsecase interface {
	Compare(a, b analysisentity.AnalysisResult) entity.ComparisonResult
	CompareInputs(ctx context.Context, inA, inB analysisentity.Input) usecase.PairSnapshot
}

// ComparisonHandler はサムネイル比較のHTTPリクエストを処理します。
type ComparisonHandler struct {
	uc ComparisonUsecase
}

// NewComparisonHandler はComparisonHandlerの新しいインスタンスを生成します。
func NewComparisonHandler(uc ComparisonUsecase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// Compare は解析済みの2つの結果を比較します。
//
// エンドポイント: POST /v1/compare
// Content-Type: application/json
// ボディ: {"a": AnalysisResult, "b": AnalysisResult}
func (h *ComparisonHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("compare request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "both analysis results a and b are required"})
		return
	}

	c.JSON(http.StatusOK, h.uc.Compare(*req.A, *req.B))
}

// CompareAnalyze は2つのサムネイルを並行して解析し、両方の結果と比較を返します。
// 片側の解析が失敗しても200を返し、その側のerrorに理由を入れます。
//
// エンドポイント: POST /v1/compare/analyze
// Content-Type: multipart/form-data
// フィールド: youtube_url_a / file_a, youtube_url_b / file_b
func (h *ComparisonHandler) CompareAnalyze(c *gin.Context) {
	inA, err := api.ReadInput(c, "youtube_url_a", "file_a", analysisusecase.MaxImageSize)
	if err != nil {
		slog.Warn("failed to read input A", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		return
	}
	inB, err := api.ReadInput(c, "youtube_url_b", "file_b", analysisusecase.MaxImageSize)
	if err != nil {
		slog.Warn("failed to read input B", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid form data"})
		return
	}

	// 入力不正はリクエスト全体の誤りとして扱う
	for _, s := range []struct {
		side string
		in   analysisentity.Input
	}{{"A", inA}, {"B", inB}} {
		if err := analysisusecase.Validate(s.in); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "thumbnail " + s.side + ": " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, h.uc.CompareInputs(c.Request.Context(), inA, inB))
}
