package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"thumblytics/internal/feature/history/domain"
	"thumblytics/internal/feature/history/domain/entity"
	"thumblytics/internal/feature/history/usecase"
)

type historyGorm struct {
	db  *gorm.DB
	max int
}

var _ usecase.HistoryRepository = (*historyGorm)(nil)

// NewHistoryGormRepository はGORMをバックエンドとする履歴リポジトリを生成します。
func NewHistoryGormRepository(db *gorm.DB) *historyGorm {
	return &historyGorm{db: db, max: entity.MaxEntries}
}

// HistoryModel は履歴テーブルの行です。Seqは挿入順で、同時刻の履歴の並びを安定させます。
type HistoryModel struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"size:36;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	Thumbnail string    `gorm:"size:2048;not null"`
	Score     float64   `gorm:"not null"`
	Source    string    `gorm:"size:2048;not null"`
}

func (HistoryModel) TableName() string {
	return "analysis_history"
}

func toModel(e entity.Entry) HistoryModel {
	return HistoryModel{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Thumbnail: e.Thumbnail,
		Score:     e.Score,
		Source:    e.Source,
	}
}

func (m HistoryModel) toEntity() entity.Entry {
	return entity.Entry{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Thumbnail: m.Thumbnail,
		Score:     m.Score,
		Source:    m.Source,
	}
}

// Add は履歴を挿入し、同じトランザクション内で上限を超えた古い行を削除します。
func (r *historyGorm) Add(ctx context.Context, e entity.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toModel(e)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		var seqs []uint
		if err := tx.Model(&HistoryModel{}).Order("seq DESC").Pluck("seq", &seqs).Error; err != nil {
			return err
		}
		if len(seqs) <= r.max {
			return nil
		}
		return tx.Where("seq IN ?", seqs[r.max:]).Delete(&HistoryModel{}).Error
	})
}

func (r *historyGorm) List(ctx context.Context, limit int) ([]entity.Entry, error) {
	var rows []HistoryModel
	q := r.db.WithContext(ctx).Order("seq DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Entry, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *historyGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&HistoryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *historyGorm) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&HistoryModel{}).Error
}
