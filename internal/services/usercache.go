package services

import (
	"strings"
	"sync"

	"github.com/sdamera/agriadvisor-backend/internal/models"
)

// UserCache is the process-lifetime identity cache. It doubles as the
// authoritative user store for the current process when MongoDB is down, so
// it never evicts. Last writer wins; the persistent store is the source of
// truth across processes.
type UserCache struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by lower-cased email
}

func NewUserCache() *UserCache {
	return &UserCache{users: make(map[string]*models.User)}
}

func (c *UserCache) Get(email string) (*models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[strings.ToLower(email)]
	return u, ok
}

func (c *UserCache) Put(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[strings.ToLower(u.Email)] = u
}

func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
