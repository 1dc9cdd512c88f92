package cache

import (
	"context"
	"testing"
	"time"

	"github.com/DanRulev/lingobot.git/internal/config"
	"github.com/DanRulev/lingobot.git/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stateStore interface {
	SetPrompt(ctx context.Context, userID int64, state models.PromptState) error
	Prompt(ctx context.Context, userID int64) (models.PromptState, bool, error)
	DeletePrompt(ctx context.Context, userID int64) error
	SetSession(ctx context.Context, userID int64, session models.Session) error
	Session(ctx context.Context, userID int64) (models.Session, bool, error)
	DeleteSession(ctx context.Context, userID int64) error
}

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), config.RedisConfig{Addr: mr.Addr()}, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_RoundTrip(t *testing.T) {
	t.Parallel()

	redisCache, _ := newRedisCache(t, time.Hour)

	stores := []struct {
		name  string
		store stateStore
	}{
		{name: "memory", store: NewCache()},
		{name: "redis", store: redisCache},
	}
	for _, tt := range stores {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			state := models.PromptState{UserID: 42, TopicID: 1, WordID: 5, ReviewID: 900, CorrectOptionID: 5}
			session := models.Session{Stage: models.StageTranslateText, SourceLang: "en", TargetLang: "ru"}

			_, ok, err := tt.store.Prompt(ctx, 42)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, tt.store.SetPrompt(ctx, 42, state))
			got, ok, err := tt.store.Prompt(ctx, 42)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, state, got)

			require.NoError(t, tt.store.SetSession(ctx, 42, session))
			gotSession, ok, err := tt.store.Session(ctx, 42)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, session, gotSession)

			_, ok, err = tt.store.Session(ctx, 43)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, tt.store.DeletePrompt(ctx, 42))
			require.NoError(t, tt.store.DeleteSession(ctx, 42))

			_, ok, _ = tt.store.Prompt(ctx, 42)
			assert.False(t, ok)
			_, ok, _ = tt.store.Session(ctx, 42)
			assert.False(t, ok)
		})
	}
}

func TestRedisCache_TTL(t *testing.T) {
	t.Parallel()

	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetSession(ctx, 7, models.Session{Stage: models.StageRegNickname}))
	assert.Equal(t, time.Minute, mr.TTL("lingobot:session:7"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Session(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_BrokenValue(t *testing.T) {
	t.Parallel()

	c, mr := newRedisCache(t, 0)
	require.NoError(t, mr.Set("lingobot:prompt:9", "{not json"))

	_, _, err := c.Prompt(context.Background(), 9)
	require.Error(t, err)
}

func TestNewRedisCache(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), config.RedisConfig{}, time.Minute)
	require.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisCache(context.Background(), config.RedisConfig{Addr: addr}, time.Minute)
	require.Error(t, err)
}
