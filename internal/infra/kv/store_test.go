package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore общий сценарий для всех реализаций Store.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "questionBank", []byte(`{"easy":[]}`)))
	require.NoError(t, s.Set(ctx, "questionBank", []byte(`{"easy":[1]}`)))

	value, ok, err := s.Get(ctx, "questionBank")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"easy":[1]}`, string(value))

	require.NoError(t, s.Delete(ctx, "questionBank"))
	_, ok, err = s.Get(ctx, "questionBank")
	require.NoError(t, err)
	assert.False(t, ok)

	// удаление отсутствующего ключа не ошибка
	require.NoError(t, s.Delete(ctx, "questionBank"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	value := []byte(`"abc"`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[1] = 'x'

	got, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))
}

func TestJSONStore(t *testing.T) {
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "nested", "state.json"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestJSONStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "state.json")

	first, err := NewJSONStore(filename)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "candidates", []byte(`[{"name":"Ann"}]`)))

	second, err := NewJSONStore(filename)
	require.NoError(t, err)
	value, ok, err := second.Get(ctx, "candidates")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"name":"Ann"}]`, string(value))
}

func TestJSONStore_RejectsInvalidJSON(t *testing.T) {
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.Error(t, s.Set(context.Background(), "k", []byte("{not json")))
}

func TestJSONStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(filename, []byte("garbage"), 0o644))

	s, err := NewJSONStore(filename)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, "currentSession")
	assert.Error(t, err)

	// запись восстанавливает файл
	require.NoError(t, s.Set(ctx, "currentSession", []byte(`{"id":"x"}`)))
	_, ok, err := s.Get(ctx, "currentSession")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("INTERVIEW_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("INTERVIEW_TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	s := NewPostgresStore(pool)
	require.NoError(t, s.EnsureSchema(ctx))
	exerciseStore(t, s)
}
