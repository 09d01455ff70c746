package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thumblytics/internal/feature/history/domain"
	"thumblytics/internal/feature/history/domain/entity"
)

const testHistoryKey = "thumblytics:history"

// setupTestRedis はテスト用のminiredisを起動します。
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func TestNewHistoryRedisRepository(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewHistoryRedisRepository(client, testHistoryKey)

	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, testHistoryKey, repo.key)
	assert.Equal(t, entity.MaxEntries, repo.max)
}

func TestHistoryRedis_AddAndList(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedisRepository(client, testHistoryKey)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Add(ctx, testEntry(i)))
	}

	raws, err := mr.List(testHistoryKey)
	require.NoError(t, err)
	assert.Len(t, raws, 3)

	got, err := repo.List(ctx, entity.MaxEntries)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, testEntry(3).ID, got[0].ID, "newest first")
	assert.Equal(t, testEntry(1).ID, got[2].ID)
	assert.True(t, testEntry(3).CreatedAt.Equal(got[0].CreatedAt))
}

func TestHistoryRedis_Add_EvictsOldest(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedisRepository(client, testHistoryKey)
	ctx := context.Background()

	for i := 1; i <= entity.MaxEntries+5; i++ {
		require.NoError(t, repo.Add(ctx, testEntry(i)))
	}

	raws, err := mr.List(testHistoryKey)
	require.NoError(t, err)
	assert.Len(t, raws, entity.MaxEntries)

	got, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, entity.MaxEntries)
	assert.Equal(t, testEntry(entity.MaxEntries+5).ID, got[0].ID)
	assert.Equal(t, testEntry(6).ID, got[len(got)-1].ID)
}

func TestHistoryRedis_List_SkipsCorrupted(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedisRepository(client, testHistoryKey)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testEntry(1)))
	_, err := mr.Lpush(testHistoryKey, "not-json")
	require.NoError(t, err)

	got, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testEntry(1).ID, got[0].ID)
}

func TestHistoryRedis_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		id          string
		expectedErr error
		remaining   int
	}{
		{"success: delete existing entry", testEntry(2).ID, nil, 2},
		{"failure: unknown id", "missing", domain.ErrEntryNotFound, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := setupTestRedis(t)
			repo := NewHistoryRedisRepository(client, testHistoryKey)
			ctx := context.Background()
			for i := 1; i <= 3; i++ {
				require.NoError(t, repo.Add(ctx, testEntry(i)))
			}

			err := repo.Delete(ctx, tt.id)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			got, err := repo.List(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, got, tt.remaining)
		})
	}
}

func TestHistoryRedis_Clear(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedisRepository(client, testHistoryKey)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testEntry(1)))
	require.NoError(t, repo.Clear(ctx))
	assert.False(t, mr.Exists(testHistoryKey))
	require.NoError(t, repo.Clear(ctx), "clearing twice is not an error")
}

// TestHistoryRedis_List_Error はRedisのエラーが伝播されることを検証します。
func TestHistoryRedis_List_Error(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectLRange(testHistoryKey, 0, int64(entity.MaxEntries-1)).SetErr(errors.New("connection refused"))

	repo := NewHistoryRedisRepository(rdb, testHistoryKey)
	_, err := repo.List(context.Background(), entity.MaxEntries)

	assert.EqualError(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestHistoryRedis_Delete_LRemError はLREMの失敗が伝播されることを検証します。
func TestHistoryRedis_Delete_LRemError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	raw, err := json.Marshal(testEntry(1))
	require.NoError(t, err)

	mock.ExpectLRange(testHistoryKey, 0, -1).SetVal([]string{string(raw)})
	mock.ExpectLRem(testHistoryKey, 1, string(raw)).SetErr(errors.New("READONLY"))

	repo := NewHistoryRedisRepository(rdb, testHistoryKey)
	err = repo.Delete(context.Background(), testEntry(1).ID)

	assert.EqualError(t, err, "READONLY")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestHistoryRedis_Delete_Raced は読み取り後に削除済みだった場合にErrEntryNotFoundを返すことを検証します。
func TestHistoryRedis_Delete_Raced(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	raw, err := json.Marshal(testEntry(1))
	require.NoError(t, err)

	mock.ExpectLRange(testHistoryKey, 0, -1).SetVal([]string{string(raw)})
	mock.ExpectLRem(testHistoryKey, 1, string(raw)).SetVal(0)

	repo := NewHistoryRedisRepository(rdb, testHistoryKey)
	err = repo.Delete(context.Background(), testEntry(1).ID)

	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
