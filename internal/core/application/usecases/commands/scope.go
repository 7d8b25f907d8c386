package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
)

// ErrBranchOutOfScope is returned when a caller targets a branch outside
// their visibility scope. Surfaced to callers as a not-found failure so the
// existence of out-of-scope records is never revealed.
var ErrBranchOutOfScope = errors.New("target branch is outside the caller's scope")

func ensureBranchScope(actor auth.Context, target kernel.BranchCode) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.CanAccess(target) {
		return ErrBranchOutOfScope
	}
	return nil
}
