package crmapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/helixcrm/console/pkg/config"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/auth/signin", func(w http.ResponseWriter, req *http.Request) {
		var body SignInRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Email != "dana@example.com" || body.Password != "Str0ng!pass" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid email or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "helixcrm_session", Value: "sess-1", Path: "/"})
		json.NewEncoder(w).Encode(User{
			ID: 7, FirstName: "Dana", LastName: "Reyes",
			Email: body.Email, Role: "admin", PasswordChanged: true,
		})
	})
	r.Post("/api/auth/signout", func(w http.ResponseWriter, req *http.Request) {
		if _, err := req.Cookie("helixcrm_session"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "helixcrm_session", Value: "", MaxAge: -1, Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	r.Put("/api/user/update/{id}", func(w http.ResponseWriter, req *http.Request) {
		if _, err := req.Cookie("helixcrm_session"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body UserUpdateRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(User{ID: 7, FirstName: body.FirstName, LastName: "Reyes", Email: "dana@example.com", Role: "admin"})
	})
	r.Put("/api/user/passwordstatus/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body PasswordStatusRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(User{ID: 7, FirstName: "Dana", Role: "admin", PasswordChanged: body.PasswordChanged})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(config.APIConfig{BaseURL: baseURL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestSignInSuccessRetainsSessionCookie(t *testing.T) {
	srv := newTestBackend(t)
	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	user, err := client.SignIn(ctx, SignInRequest{Email: "dana@example.com", Password: "Str0ng!pass", RememberMe: true})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != 7 || user.FirstName != "Dana" || !user.PasswordChanged {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The jar should replay the cookie; signout rejects requests without it.
	if err := client.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
}

func TestSignInRejectedCarriesServerMessage(t *testing.T) {
	srv := newTestBackend(t)
	client := newTestClient(t, srv.URL)

	_, err := client.SignIn(context.Background(), SignInRequest{Email: "dana@example.com", Password: "wrong"})
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected a coded error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %s", typed.Code())
	}
	if typed.Message() != "invalid email or password" {
		t.Fatalf("expected server message, got %q", typed.Message())
	}
}

func TestSignOutWithoutSession(t *testing.T) {
	srv := newTestBackend(t)
	client := newTestClient(t, srv.URL)

	err := client.SignOut(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	srv := newTestBackend(t)
	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	if _, err := client.SignIn(ctx, SignInRequest{Email: "dana@example.com", Password: "Str0ng!pass"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	user, err := client.UpdateUser(ctx, 7, UserUpdateRequest{FirstName: "Daniela"})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if user.FirstName != "Daniela" {
		t.Fatalf("update not reflected: %+v", user)
	}

	if _, err := client.UpdateUser(ctx, 0, UserUpdateRequest{}); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for id 0, got %v", err)
	}
}

func TestSetPasswordStatus(t *testing.T) {
	srv := newTestBackend(t)
	client := newTestClient(t, srv.URL)

	user, err := client.SetPasswordStatus(context.Background(), 7, true)
	if err != nil {
		t.Fatalf("set password status: %v", err)
	}
	if !user.PasswordChanged {
		t.Fatalf("flag not set: %+v", user)
	}
}

func TestBackendDownMapsToDependencyError(t *testing.T) {
	srv := newTestBackend(t)
	url := srv.URL
	srv.Close()

	client := newTestClient(t, url)
	_, err := client.SignIn(context.Background(), SignInRequest{Email: "dana@example.com", Password: "Str0ng!pass"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
