package cache

import (
	"context"
	"sync"

	"github.com/DanRulev/lingobot.git/internal/models"
)

// Cache keeps dialog state in process memory. It is lost on restart.
type Cache struct {
	mu       sync.Mutex
	prompts  map[int64]models.PromptState
	sessions map[int64]models.Session
}

func NewCache() *Cache {
	return &Cache{
		prompts:  make(map[int64]models.PromptState),
		sessions: make(map[int64]models.Session),
	}
}

func (c *Cache) SetPrompt(_ context.Context, userID int64, state models.PromptState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts[userID] = state
	return nil
}

func (c *Cache) Prompt(_ context.Context, userID int64) (models.PromptState, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, exists := c.prompts[userID]
	return state, exists, nil
}

func (c *Cache) DeletePrompt(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.prompts, userID)
	return nil
}

func (c *Cache) SetSession(_ context.Context, userID int64, session models.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
	return nil
}

func (c *Cache) Session(_ context.Context, userID int64) (models.Session, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists, nil
}

func (c *Cache) DeleteSession(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
	return nil
}
