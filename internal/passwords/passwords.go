// Package passwords implements the bulk password-reset flow for selected
// employees. Each reset generates a temporary password, hashes it for the
// handover sheet, and flips the account's passwordChanged flag on the backend.
// Failures are collected per user so one bad account does not abort the batch.
package passwords

import (
	"context"

	"go.uber.org/multierr"

	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/pkg/config"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/helixcrm/console/pkg/logger"
	"github.com/helixcrm/console/pkg/security"
)

const tempPasswordLength = 12

// StatusAPI is the slice of the backend client the reset queue needs.
type StatusAPI interface {
	SetPasswordStatus(ctx context.Context, id int64, changed bool) (*crmapi.User, error)
}

// Reset is the outcome of one user's password reset. TempPassword is the
// plaintext handed to the administrator once; Hash is what gets stored.
type Reset struct {
	UserID       int64
	TempPassword string
	Hash         string
}

// Resetter runs bulk password resets.
type Resetter struct {
	api  StatusAPI
	cfg  config.PasswordConfig
	logg *logger.Logger
}

func NewResetter(api StatusAPI, cfg config.PasswordConfig, logg *logger.Logger) *Resetter {
	return &Resetter{api: api, cfg: cfg, logg: logg}
}

// ResetAll processes every selected user ID in order. It returns the resets
// that succeeded alongside the combined error for those that did not; callers
// surface both, so a partial batch is visible rather than silently dropped.
func (r *Resetter) ResetAll(ctx context.Context, userIDs []int64) ([]Reset, error) {
	if len(userIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no users selected")
	}

	var (
		resets []Reset
		errs   error
	)
	for _, id := range userIDs {
		reset, err := r.resetOne(ctx, id)
		if err != nil {
			r.logg.Error(r.logg.WithRecordID(ctx, id), "password reset failed", err)
			errs = multierr.Append(errs, err)
			continue
		}
		resets = append(resets, *reset)
	}

	if errs == nil {
		r.logg.Info(ctx, "bulk password reset complete")
	}
	return resets, errs
}

func (r *Resetter) resetOne(ctx context.Context, id int64) (*Reset, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id")
	}

	temp, err := security.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
	}
	hash, err := security.HashPassword(temp, r.cfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash temp password")
	}

	// passwordChanged goes false so the user is forced through the change
	// flow on next sign-in.
	if _, err := r.api.SetPasswordStatus(ctx, id, false); err != nil {
		return nil, err
	}

	return &Reset{UserID: id, TempPassword: temp, Hash: hash}, nil
}
