package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"thumblytics/internal/feature/history/domain"
	"thumblytics/internal/feature/history/domain/entity"
	"thumblytics/internal/feature/history/usecase"
)

// historyRedis はRedisのリストに履歴を保存します。先頭が最新です。
type historyRedis struct {
	client *redis.Client
	key    string
	max    int
}

var _ usecase.HistoryRepository = (*historyRedis)(nil)

// NewHistoryRedisRepository はRedisをバックエンドとする履歴リポジトリを生成します。
func NewHistoryRedisRepository(client *redis.Client, key string) *historyRedis {
	return &historyRedis{client: client, key: key, max: entity.MaxEntries}
}

// Add はLPUSHとLTRIMを1つのトランザクションで実行します。
func (r *historyRedis) Add(ctx context.Context, e entity.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.key, data)
		pipe.LTrim(ctx, r.key, 0, int64(r.max-1))
		return nil
	})
	return err
}

func (r *historyRedis) List(ctx context.Context, limit int) ([]entity.Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raws, err := r.client.LRange(ctx, r.key, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	out := make([]entity.Entry, 0, len(raws))
	for _, raw := range raws {
		var e entity.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			// 壊れた要素は読み飛ばす
			slog.Warn("skipping corrupted history entry", "key", r.key, "error", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Delete は一致する要素をLREMで取り除きます。
func (r *historyRedis) Delete(ctx context.Context, id string) error {
	raws, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return err
	}

	for _, raw := range raws {
		var e entity.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil || e.ID != id {
			continue
		}
		n, err := r.client.LRem(ctx, r.key, 1, raw).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			// 読み取り後に別のリクエストが削除した
			return domain.ErrEntryNotFound
		}
		return nil
	}
	return domain.ErrEntryNotFound
}

func (r *historyRedis) Clear(ctx context.Context) error {
	err := r.client.Del(ctx, r.key).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
