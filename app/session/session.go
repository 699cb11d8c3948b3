package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Flash is a one-shot notice rendered on the next page view.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Data is what the store persists per session id. The browser only ever
// sees the signed session id, never this payload.
type Data struct {
	Username string  `json:"username,omitempty"`
	Role     string  `json:"role,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

type Session struct {
	ID string
	Data
	isNew   bool
	dirty   bool
	staleID string
}

func (s *Session) Authenticated() bool { return s.Username != "" }

func (s *Session) IsNew() bool { return s.isNew }

func (s *Session) Dirty() bool { return s.dirty }

// StaleID returns the id abandoned by rotation, or "".
func (s *Session) StaleID() string { return s.staleID }

// SetIdentity records a successful login under a brand-new id. An id the
// browser held before authenticating never names a logged-in session.
func (s *Session) SetIdentity(username, role string) {
	s.rotate()
	s.Username = username
	s.Role = role
	s.dirty = true
}

func (s *Session) rotate() {
	if !s.isNew {
		s.staleID = s.ID
	}
	s.ID = uuid.NewString()
	s.isNew = true
}

// Clear wipes everything held for the session while keeping its id, so a
// logout notice can still ride the same cookie. Idempotent.
func (s *Session) Clear() {
	s.Data = Data{}
	s.dirty = true
}

func (s *Session) AddFlash(level, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
	s.dirty = true
}

// PopFlashes drains pending notices. Draining an empty session is a no-op
// and does not mark it dirty.
func (s *Session) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return out
}

// Manager ties the signed cookie to the backing store.
type Manager struct {
	Store      Store
	Signer     *CookieSigner
	CookieName string
	TTL        time.Duration
}

func NewManager(store Store, signer *CookieSigner, ttl time.Duration) *Manager {
	return &Manager{Store: store, Signer: signer, CookieName: "ticket_session", TTL: ttl}
}

// Load resolves the request's session cookie to stored data. A missing,
// tampered or expired cookie yields a fresh anonymous session.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.CookieName)
	if err == nil {
		if id, err := m.Signer.Parse(cookie.Value); err == nil {
			data, ok, err := m.Store.Load(r.Context(), id)
			if err == nil && ok {
				return &Session{ID: id, Data: data}
			}
		}
	}
	return &Session{ID: uuid.NewString(), isNew: true}
}

// Save persists session data to the store.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.Store.Save(ctx, s.ID, s.Data, m.TTL)
}

// Cookie builds the signed cookie for a session.
func (m *Manager) Cookie(s *Session) (*http.Cookie, error) {
	token, err := m.Signer.Sign(s.ID, m.TTL)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}
