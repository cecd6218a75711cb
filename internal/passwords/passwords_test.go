package passwords

import (
	"context"
	"io"
	"testing"

	"go.uber.org/multierr"

	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/pkg/config"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/helixcrm/console/pkg/logger"
	"github.com/helixcrm/console/pkg/security"
)

type stubStatusAPI struct {
	failFor map[int64]error
	calls   []int64
}

func (s *stubStatusAPI) SetPasswordStatus(ctx context.Context, id int64, changed bool) (*crmapi.User, error) {
	s.calls = append(s.calls, id)
	if err, ok := s.failFor[id]; ok {
		return nil, err
	}
	return &crmapi.User{ID: id, PasswordChanged: changed}, nil
}

func testPasswordConfig() config.PasswordConfig {
	// Small argon parameters keep the test fast.
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestResetter(api StatusAPI) *Resetter {
	return NewResetter(api, testPasswordConfig(), logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
}

func TestResetAllSuccess(t *testing.T) {
	api := &stubStatusAPI{}
	resetter := newTestResetter(api)

	resets, err := resetter.ResetAll(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resets) != 3 {
		t.Fatalf("expected 3 resets, got %d", len(resets))
	}
	if len(api.calls) != 3 {
		t.Fatalf("expected 3 backend calls, got %d", len(api.calls))
	}

	for _, reset := range resets {
		if len(reset.TempPassword) != tempPasswordLength {
			t.Fatalf("temp password length %d", len(reset.TempPassword))
		}
		ok, err := security.VerifyPassword(reset.TempPassword, reset.Hash)
		if err != nil || !ok {
			t.Fatalf("hash does not verify for user %d: ok=%v err=%v", reset.UserID, ok, err)
		}
	}
}

func TestResetAllPartialFailure(t *testing.T) {
	api := &stubStatusAPI{failFor: map[int64]error{
		2: pkgerrors.New(pkgerrors.CodeDependency, "backend unavailable"),
	}}
	resetter := newTestResetter(api)

	resets, err := resetter.ResetAll(context.Background(), []int64{1, 2, 3})
	if err == nil {
		t.Fatal("expected combined error")
	}
	if len(multierr.Errors(err)) != 1 {
		t.Fatalf("expected 1 collected error, got %d", len(multierr.Errors(err)))
	}
	if len(resets) != 2 {
		t.Fatalf("expected 2 successful resets, got %d", len(resets))
	}
	// One user's failure must not stop the rest of the batch.
	if len(api.calls) != 3 {
		t.Fatalf("expected 3 backend calls, got %d", len(api.calls))
	}
}

func TestResetAllEmptySelection(t *testing.T) {
	resetter := newTestResetter(&stubStatusAPI{})
	_, err := resetter.ResetAll(context.Background(), nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResetAllInvalidID(t *testing.T) {
	api := &stubStatusAPI{}
	resetter := newTestResetter(api)

	resets, err := resetter.ResetAll(context.Background(), []int64{0, 5})
	if err == nil {
		t.Fatal("expected error for id 0")
	}
	if len(resets) != 1 || resets[0].UserID != 5 {
		t.Fatalf("expected reset for user 5 only, got %+v", resets)
	}
}
