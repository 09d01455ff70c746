package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	historyadapters "thumblytics/internal/feature/history/adapters"
	"thumblytics/internal/feature/history/usecase"
)

// NewHistoryRepository はHistoryRepositoryの実装を生成します。
// Redisが利用可能ならRedis実装を、そうでなければGORM（SQLite/PostgreSQL）実装を返します。
func NewHistoryRepository(rdb *redis.Client, db *gorm.DB, key string) usecase.HistoryRepository {
	if rdb != nil {
		return historyadapters.NewHistoryRedisRepository(rdb, key)
	}
	return historyadapters.NewHistoryGormRepository(db)
}
