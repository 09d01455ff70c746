// Package usecase はhistoryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"thumblytics/internal/feature/history/domain"
	"thumblytics/internal/feature/history/domain/entity"
)

// HistoryRepository は履歴の永続化を抽象化します。
// 実装はAddのたびにentity.MaxEntries件を超えた古い履歴を削除します。
type HistoryRepository interface {
	// Add は履歴を先頭に追加します。
	Add(ctx context.Context, e entity.Entry) error
	// List は新しい順に最大limit件の履歴を返します。
	List(ctx context.Context, limit int) ([]entity.Entry, error)
	// Delete は指定IDの履歴を削除します。存在しない場合はdomain.ErrEntryNotFoundを返します。
	Delete(ctx context.Context, id string) error
	// Clear はすべての履歴を削除します。
	Clear(ctx context.Context) error
}

// historyUsecase は解析履歴のビジネスロジックを提供します。
type historyUsecase struct {
	repo  HistoryRepository
	now   func() time.Time
	newID func() string
}

// NewHistoryUsecase はhistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(repo HistoryRepository) *historyUsecase {
	return &historyUsecase{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record は解析1件分の履歴を記録します。
func (u *historyUsecase) Record(ctx context.Context, source, thumbnail string, score float64) error {
	e := entity.Entry{
		ID:        u.newID(),
		CreatedAt: u.now().UTC(),
		Thumbnail: thumbnail,
		Score:     score,
		Source:    source,
	}
	if err := u.repo.Add(ctx, e); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

// List は新しい順に履歴を返します。
func (u *historyUsecase) List(ctx context.Context) ([]entity.Entry, error) {
	entries, err := u.repo.List(ctx, entity.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	if entries == nil {
		entries = []entity.Entry{}
	}
	return entries, nil
}

// Delete は指定IDの履歴を削除します。
func (u *historyUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrEntryNotFound
	}
	return u.repo.Delete(ctx, id)
}

// Clear はすべての履歴を削除します。
func (u *historyUsecase) Clear(ctx context.Context) error {
	return u.repo.Clear(ctx)
}
