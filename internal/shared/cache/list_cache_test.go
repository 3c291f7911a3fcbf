package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"speed-hrm/internal/shared/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFetch_Hit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewListCache(rdb, cache.DefaultTTL)

	payload, _ := json.Marshal([]item{{ID: "1", Name: "HR"}})
	mock.ExpectGet("departments:all").SetVal(string(payload))

	calls := 0
	got, err := cache.Fetch(context.Background(), c, "departments:all", func(ctx context.Context) ([]item, error) {
		calls++
		return nil, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "HR", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_MissStores(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewListCache(rdb, cache.DefaultTTL)

	items := []item{{ID: "2", Name: "Finance"}}
	payload, _ := json.Marshal(items)

	mock.ExpectGet("departments:all").RedisNil()
	mock.ExpectSet("departments:all", string(payload), cache.DefaultTTL).SetVal("OK")

	got, err := cache.Fetch(context.Background(), c, "departments:all", func(ctx context.Context) ([]item, error) {
		return items, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, items, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_LoadError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewListCache(rdb, cache.DefaultTTL)

	mock.ExpectGet("k").RedisNil()

	_, err := cache.Fetch(context.Background(), c, "k", func(ctx context.Context) ([]item, error) {
		return nil, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_NoRedis(t *testing.T) {
	c := cache.NewListCache(nil, 0)

	got, err := cache.Fetch(context.Background(), c, "k", func(ctx context.Context) ([]item, error) {
		return []item{{ID: "3"}}, nil
	})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	c.Invalidate(context.Background(), "k")
}

func TestInvalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := cache.NewListCache(rdb, cache.DefaultTTL)

	mock.ExpectDel("a", "b").SetVal(2)
	c.Invalidate(context.Background(), "a", "b")

	assert.NoError(t, mock.ExpectationsWereMet())
}
