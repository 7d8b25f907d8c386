// Package auth provides the caller identity value object and the branch
// isolation policy consumed by every engine entry point.
//
// A Context carries who is calling (caller id), what they may do (role), and
// where they operate from (effective branch). It is built once per request at
// the transport boundary and passed explicitly through commands and queries;
// the engine never consults ambient session state.
package auth

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrContextIsNotConstructed is returned when a Context was not created via NewContext.
var ErrContextIsNotConstructed = errors.New("auth Context must be created via NewContext constructor")

// Role is the caller's authorization level.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOperator is a branch-bound user: reads and mutations are scoped
	// to the caller's effective branch.
	RoleOperator

	// RoleAdmin is an elevated role with organization-wide scope.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleOperator: "operator",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleOperator && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Context is the per-request caller identity: id, role, and effective branch.
// It is immutable after construction.
type Context struct {
	callerID kernel.UUID
	role     Role
	branch   kernel.BranchCode

	guard guard.ConstructorGuard
}

// NewContext creates a caller context. All three attributes are required;
// even admin callers carry a home branch for audit attribution.
func NewContext(callerID kernel.UUID, role Role, branch kernel.BranchCode) (Context, error) {
	if err := callerID.Validate(); err != nil {
		return Context{}, err
	}
	if err := role.Validate(); err != nil {
		return Context{}, err
	}
	if err := branch.Validate(); err != nil {
		return Context{}, err
	}

	return Context{
		callerID: callerID,
		role:     role,
		branch:   branch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the context was created through the constructor.
func (c Context) Validate() error {
	return c.guard.Validate(ErrContextIsNotConstructed)
}

// CallerID returns the caller's unique identifier.
func (c Context) CallerID() kernel.UUID {
	return c.callerID
}

// Role returns the caller's role.
func (c Context) Role() Role {
	return c.role
}

// Branch returns the caller's effective branch.
func (c Context) Branch() kernel.BranchCode {
	return c.branch
}

// CanAccess is the branch isolation predicate: a pure function of
// (role, caller branch, target branch). Operators may only touch records
// owned by their own branch; admin-equivalent roles see the whole
// organization. It holds no state and performs no I/O.
func (c Context) CanAccess(target kernel.BranchCode) bool {
	if c.role == RoleAdmin {
		return true
	}
	return c.branch.IsEqual(target)
}

// IsElevated reports whether the caller's reads are unscoped.
// Queries use it to decide whether to apply the branch filter at all.
func (c Context) IsElevated() bool {
	return c.role == RoleAdmin
}
