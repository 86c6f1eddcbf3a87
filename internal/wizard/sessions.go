package wizard

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is one visitor's wizard run. State is the whole form; the
// engine is rebuilt around it on each request.
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, state State) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// ====================
// Redis-backed store
// ====================

const sessionKeyPrefix = "wizard:session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps sessions in Redis with a sliding TTL. Every Save
// refreshes the expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, state State) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New().String(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.write(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, errors.NewSessionNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewSessionStoreError(err)
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.NewSessionStoreError(err)
	}
	return &session, nil
}

func (s *redisStore) Save(ctx context.Context, session *Session) error {
	session.UpdatedAt = time.Now().UTC()
	return s.write(ctx, session)
}

// Delete is idempotent. The active-sessions gauge is not maintained on the
// Redis path: keys expire server-side where this process cannot observe
// them, so any count kept here would drift.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}

func (s *redisStore) write(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.NewSessionStoreError(err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}

// ====================
// In-memory store
// ====================

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// cloneSession detaches the slice-backed fields so callers and the store
// never share backing arrays.
func cloneSession(s Session) Session {
	out := s
	out.State.Scope = append([]string(nil), s.State.Scope...)
	out.State.Accreditation = append([]string(nil), s.State.Accreditation...)
	return out
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore is the fallback when Redis is not configured. Expired
// entries are dropped lazily on read and swept on write.
func NewMemoryStore(ttl time.Duration) SessionStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryStore) Create(ctx context.Context, state State) (*Session, error) {
	now := s.now().UTC()
	session := Session{
		ID:        uuid.New().String(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sweepLocked(now)
	s.entries[session.ID] = memoryEntry{session: cloneSession(session), expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()

	metrics.WizardSessionsActive.Inc()
	out := session
	return &out, nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*Session, error) {
	now := s.now().UTC()

	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.NewSessionNotFoundError(id)
	}
	if now.After(entry.expiresAt) {
		s.mu.Lock()
		if _, still := s.entries[id]; still {
			delete(s.entries, id)
			metrics.WizardSessionsActive.Dec()
		}
		s.mu.Unlock()
		return nil, errors.NewSessionExpiredError(id)
	}
	out := cloneSession(entry.session)
	return &out, nil
}

func (s *memoryStore) Save(ctx context.Context, session *Session) error {
	now := s.now().UTC()
	session.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.ID] = memoryEntry{session: cloneSession(*session), expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if ok {
		metrics.WizardSessionsActive.Dec()
	}
	return nil
}

func (s *memoryStore) sweepLocked(now time.Time) {
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			metrics.WizardSessionsActive.Dec()
		}
	}
}
