// Package mockapi is the development stand-in for the CRM backend. It serves
// the same endpoints the console client consumes, backed by an in-memory
// account store with Argon2id-hashed seed credentials and cookie sessions.
// It exists so the console can be exercised end to end without the real
// backend.
package mockapi

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/pkg/config"
	"github.com/helixcrm/console/pkg/logger"
	"github.com/helixcrm/console/pkg/security"
)

const sessionCookieName = "helixcrm_session"

type account struct {
	user crmapi.User
	hash string
}

type session struct {
	userID    int64
	expiresAt time.Time
}

// Server holds the in-memory accounts and sessions behind the stub API.
type Server struct {
	cfg  config.MockAPIConfig
	logg *logger.Logger

	mu       sync.Mutex
	accounts map[int64]*account
	byEmail  map[string]int64
	sessions map[string]session
	now      func() time.Time
}

// SeedAccount is one development credential loaded at startup.
type SeedAccount struct {
	User     crmapi.User
	Password string
}

// NewServer builds the stub with the given seed accounts. Passwords are
// hashed immediately; the plaintext is not retained.
func NewServer(cfg config.MockAPIConfig, pwCfg config.PasswordConfig, logg *logger.Logger, seeds []SeedAccount) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		logg:     logg,
		accounts: map[int64]*account{},
		byEmail:  map[string]int64{},
		sessions: map[string]session{},
		now:      time.Now,
	}
	for _, seed := range seeds {
		if seed.User.ID <= 0 {
			return nil, fmt.Errorf("seed account %q needs a positive id", seed.User.Email)
		}
		hash, err := security.HashPassword(seed.Password, pwCfg)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password for %q: %w", seed.User.Email, err)
		}
		s.accounts[seed.User.ID] = &account{user: seed.User, hash: hash}
		s.byEmail[strings.ToLower(seed.User.Email)] = seed.User.ID
	}
	return s, nil
}

// Handler returns the routed HTTP handler including the CORS policy.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	r.Post("/api/auth/signin", s.handleSignIn)
	r.Post("/api/auth/signout", s.handleSignOut)
	r.Put("/api/user/update/{id}", s.handleUserUpdate)
	r.Put("/api/user/passwordstatus/{id}", s.handlePasswordStatus)
	return r
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req crmapi.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	acct := s.accounts[id]
	match, err := security.VerifyPassword(req.Password, acct.hash)
	if err != nil || !match {
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	ttl := s.cfg.SessionTTL
	if req.RememberMe {
		ttl = s.cfg.RememberTTL
	}
	token, err := newToken()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "session allocation failed")
		return
	}
	s.sessions[token] = session{userID: id, expiresAt: s.now().Add(ttl)}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
	s.logg.Info(s.logg.WithUserID(r.Context(), acct.user.Email), "mock signin")
	writeJSON(w, http.StatusOK, acct.user)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "no active session")
		return
	}

	s.mu.Lock()
	delete(s.sessions, cookie.Value)
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.authorized(w, r)
	if !ok {
		return
	}

	var req crmapi.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.FirstName != "" {
		acct.user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		acct.user.LastName = req.LastName
	}
	if req.Email != "" {
		delete(s.byEmail, strings.ToLower(acct.user.Email))
		acct.user.Email = req.Email
		s.byEmail[strings.ToLower(req.Email)] = acct.user.ID
	}
	if req.Telephone != "" {
		acct.user.Telephone = req.Telephone
	}
	if req.Position != "" {
		acct.user.Position = req.Position
	}
	if req.TimeZone != "" {
		acct.user.TimeZone = req.TimeZone
	}
	if req.Avatar != "" {
		acct.user.Avatar = req.Avatar
	}
	writeJSON(w, http.StatusOK, acct.user)
}

func (s *Server) handlePasswordStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req crmapi.PasswordStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	acct.user.PasswordChanged = req.PasswordChanged
	writeJSON(w, http.StatusOK, acct.user)
}

// authorized resolves the session cookie to its account. The update endpoint
// only lets a session touch its own account.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request) (*account, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "no active session")
		return nil, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return nil, false
	}

	s.mu.Lock()
	sess, ok := s.sessions[cookie.Value]
	if ok && s.now().After(sess.expiresAt) {
		delete(s.sessions, cookie.Value)
		ok = false
	}
	acct := s.accounts[id]
	s.mu.Unlock()

	if !ok {
		writeMessage(w, http.StatusUnauthorized, "session expired")
		return nil, false
	}
	if id != sess.userID || acct == nil {
		writeMessage(w, http.StatusForbidden, "cannot modify another account")
		return nil, false
	}
	return acct, true
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
