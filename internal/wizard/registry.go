package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an organization wizard shared between requests.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu     sync.Mutex
	review *OrganizationReview
}

// Do runs fn with exclusive access to the session's wizard.
func (s *Session) Do(fn func(*OrganizationReview) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.review)
}

// Registry keeps the in-flight organization wizards.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Add registers the wizard under a new session ID.
func (r *Registry) Add(review *OrganizationReview) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().In(time.UTC),
		review:    review,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// Remove forgets the session. Records it committed stay in the store.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, id)
	return nil
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
