package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionLinkCache remembers (session, lead) pairs already written to
// session_leads so repeated events skip the database.
type SessionLinkCache struct {
	cache *cache.Cache
}

func NewSessionLinkCache() *SessionLinkCache {
	return &SessionLinkCache{
		cache: cache.New(6*time.Hour, 30*time.Minute),
	}
}

func linkKey(sessionID, leadID string) string {
	return sessionID + "|" + leadID
}

func (c *SessionLinkCache) Seen(sessionID, leadID string) bool {
	_, found := c.cache.Get(linkKey(sessionID, leadID))
	return found
}

func (c *SessionLinkCache) Remember(sessionID, leadID string) {
	c.cache.Set(linkKey(sessionID, leadID), struct{}{}, cache.DefaultExpiration)
}
