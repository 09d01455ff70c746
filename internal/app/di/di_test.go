package di

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"thumblytics/internal/platform/externalapi/thumblytics"
)

func TestNewAnalyzer(t *testing.T) {
	t.Setenv("ANALYSIS_API_BASE_URL", "http://analysis.internal:9000/")

	c := NewAnalyzer()

	assert.Equal(t, "http://analysis.internal:9000", c.BaseURL())
}

func TestNewAnalyzer_Default(t *testing.T) {
	t.Setenv("ANALYSIS_API_BASE_URL", "")

	assert.Equal(t, thumblytics.DefaultBaseURL, NewAnalyzer().BaseURL())
}

func TestNewHistoryRepository(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	assert.Equal(t, "*adapters.historyRedis", typeName(NewHistoryRepository(rdb, db, "k")))
	assert.Equal(t, "*adapters.historyGorm", typeName(NewHistoryRepository(nil, db, "k")))
}

func TestNewThumbnailFetcher(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, NewThumbnailFetcher())
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }
