package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"estateflow-be/pkg/gemini"
)

// SessionRepository keeps live chat sessions in memory, keyed by conversation
// id. Evicted sessions are rebuilt from persisted messages by the caller.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *SessionRepository) Save(conversationID string, session *gemini.ChatSession) {
	r.cache.Set(conversationID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(conversationID string) (*gemini.ChatSession, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*gemini.ChatSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}

// Lock returns the mutex serializing sends for one conversation. Sessions
// mutate their history in place, so concurrent sends on the same conversation
// must queue.
func (r *SessionRepository) Lock(conversationID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.locks[conversationID]; ok {
		return l
	}
	l := &sync.Mutex{}
	r.locks[conversationID] = l
	return l
}
