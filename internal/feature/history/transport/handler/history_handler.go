// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"thumblytics/internal/api"
	"thumblytics/internal/feature/history/domain"
	"thumblytics/internal/feature/history/domain/entity"
)

// HistoryUsecase は解析履歴のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	List(ctx context.Context) ([]entity.Entry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// HistoryHandler は解析履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler はHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List は履歴を新しい順に返します。
//
// エンドポイント: GET /v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list history", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Delete は履歴を1件削除します。
//
// エンドポイント: DELETE /v1/history/:id
func (h *HistoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to delete history entry", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete history entry"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear はすべての履歴を削除します。
//
// エンドポイント: DELETE /v1/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.uc.Clear(c.Request.Context()); err != nil {
		slog.Error("failed to clear history", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to clear history"})
		return
	}
	c.Status(http.StatusNoContent)
}
