package repository

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gogotex/docstore/internal/document"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	return NewRedisStore(client, "test:document:"), m
}

func TestRedisStore_PutGet(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	created := time.Date(2024, 5, 1, 10, 30, 0, 123, time.UTC)
	d := &document.Document{
		ID:      "d1",
		Title:   document.String("Alpha"),
		Content: document.String("hello"),
		Author:  &document.Author{ID: "a1", Name: "Ann"},
		Created: created,
	}
	require.NoError(t, s.Put(ctx, d))

	got, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	require.Equal(t, "Alpha", *got.Title)
	require.Equal(t, "Ann", got.Author.Name)
	require.True(t, created.Equal(got.Created))
}

func TestRedisStore_OptionalFieldsStayAbsent(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, &document.Document{ID: "bare"}))
	got, err := s.Get(ctx, "bare")
	require.NoError(t, err)
	require.Nil(t, got.Title)
	require.Nil(t, got.Content)
	require.Nil(t, got.Author)
	require.True(t, got.Created.IsZero())
}

func TestRedisStore_AllSkipsVanishedEntries(t *testing.T) {
	s, m := newTestRedisStore(t)
	ctx := context.Background()

	list, err := s.All(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, s.Put(ctx, &document.Document{ID: "d1"}))
	require.NoError(t, s.Put(ctx, &document.Document{ID: "d2"}))
	require.NoError(t, s.Put(ctx, &document.Document{ID: "d1", Title: document.String("again")}))

	list, err = s.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	m.Del("test:document:doc:d2")
	list, err = s.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "d1", list[0].ID)
	require.Equal(t, "again", *list[0].Title)
}
