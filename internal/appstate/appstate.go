// Package appstate holds the process-wide console state: the theme slice and
// the session slice. Both rehydrate from the durable store before anything
// renders and persist on every change; a failed network call never mutates
// either slice.
package appstate

import (
	"context"
	"time"

	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/helixcrm/console/pkg/logger"
	"github.com/helixcrm/console/pkg/store"
)

const (
	keyTheme   = "theme"
	keySession = "session"
)

// Session is the persisted authenticated-account snapshot.
type Session struct {
	User       crmapi.User `json:"user"`
	RememberMe bool        `json:"rememberMe"`
	SignedInAt time.Time   `json:"signedInAt"`
}

// API is the slice of the backend client that session state depends on.
type API interface {
	SignIn(ctx context.Context, req crmapi.SignInRequest) (*crmapi.User, error)
	SignOut(ctx context.Context) error
	UpdateUser(ctx context.Context, id int64, req crmapi.UserUpdateRequest) (*crmapi.User, error)
}

// State is the console's process-wide state container.
type State struct {
	store *store.Store
	api   API
	logg  *logger.Logger

	theme   enums.ThemeMode
	session *Session
}

// New builds an empty State. Call Rehydrate before first use.
func New(st *store.Store, api API, logg *logger.Logger) *State {
	return &State{
		store: st,
		api:   api,
		logg:  logg,
		theme: enums.ThemeModeLight,
	}
}

// Rehydrate loads persisted theme and session from the store. Missing entries
// leave defaults in place; a corrupt theme value falls back to light rather
// than failing startup.
func (s *State) Rehydrate(ctx context.Context) error {
	var themeRaw string
	found, err := s.store.Get(ctx, keyTheme, &themeRaw)
	if err != nil {
		return err
	}
	if found {
		mode, parseErr := enums.ParseThemeMode(themeRaw)
		if parseErr != nil {
			s.logg.Warn(s.logg.WithField(ctx, "value", themeRaw), "ignoring invalid persisted theme")
		} else {
			s.theme = mode
		}
	}

	var sess Session
	found, err = s.store.Get(ctx, keySession, &sess)
	if err != nil {
		return err
	}
	if found {
		s.session = &sess
	}
	return nil
}

// Theme returns the active theme mode.
func (s *State) Theme() enums.ThemeMode {
	return s.theme
}

// ToggleTheme flips the theme and persists the new value before returning it.
func (s *State) ToggleTheme(ctx context.Context) (enums.ThemeMode, error) {
	next := s.theme.Toggle()
	if err := s.store.Put(ctx, keyTheme, next.String()); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}

// Session returns the active session, or nil when signed out.
func (s *State) Session() *Session {
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// SignedIn reports whether a session is active.
func (s *State) SignedIn() bool {
	return s.session != nil
}

// SignIn authenticates against the backend and, on success, writes the session
// to the store and activates it. On failure nothing changes.
func (s *State) SignIn(ctx context.Context, email, password string, rememberMe bool) (*Session, error) {
	user, err := s.api.SignIn(ctx, crmapi.SignInRequest{Email: email, Password: password, RememberMe: rememberMe})
	if err != nil {
		s.logg.Error(ctx, "sign in failed", err)
		return nil, err
	}

	sess := Session{User: *user, RememberMe: rememberMe, SignedInAt: time.Now().UTC()}
	if err := s.store.Put(ctx, keySession, sess); err != nil {
		return nil, err
	}
	s.session = &sess

	ctx = s.logg.WithUserID(ctx, user.Email)
	s.logg.Info(ctx, "signed in")
	return s.Session(), nil
}

// SignOut tears the session down: backend first, then the store entry, then
// the in-memory slice. The store delete is synchronous so a restart cannot
// resurrect the session.
func (s *State) SignOut(ctx context.Context) error {
	if s.session == nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "no active session")
	}
	if err := s.api.SignOut(ctx); err != nil {
		s.logg.Error(ctx, "sign out failed", err)
		return err
	}
	if err := s.store.Delete(ctx, keySession); err != nil {
		return err
	}
	s.session = nil
	s.logg.Info(ctx, "signed out")
	return nil
}

// UpdateProfile submits edited profile fields for the signed-in account and,
// on success, refreshes the persisted session with the returned user.
func (s *State) UpdateProfile(ctx context.Context, req crmapi.UserUpdateRequest) (*Session, error) {
	if s.session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in")
	}

	user, err := s.api.UpdateUser(ctx, s.session.User.ID, req)
	if err != nil {
		s.logg.Error(ctx, "profile update failed", err)
		return nil, err
	}

	sess := *s.session
	sess.User = *user
	if err := s.store.Put(ctx, keySession, sess); err != nil {
		return nil, err
	}
	s.session = &sess
	return s.Session(), nil
}
