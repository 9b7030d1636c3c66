package hart

import (
	"errors"
	"fmt"
)

// The following errors may be returned by Step. Each wraps one of
// these sentinels, so callers use errors.Is to classify a fault.
var (
	// ErrUsedFreePage indicates a page-table walk hit a zero top-level
	// entry or a second-level entry with the present bit clear.
	ErrUsedFreePage = errors.New("hart: used/free page")

	// ErrInvalidPermissions indicates a page exists but lacks a
	// requested permission bit.
	ErrInvalidPermissions = errors.New("hart: invalid permissions")

	// ErrDivideByZero indicates an integer divide or modulo with a
	// zero divisor.
	ErrDivideByZero = errors.New("hart: divide by zero")

	// ErrPrivilegeFault indicates an attempt to write a system-only
	// control bit from user ring, or to promote ring from user to
	// system.
	ErrPrivilegeFault = errors.New("hart: privilege fault")
)

// PermissionFault is returned when a page exists and is present but
// does not grant a requested permission. It wraps ErrInvalidPermissions.
type PermissionFault struct {
	PagePerms uint32
	Requested Permission
}

// Error implements error.
func (f *PermissionFault) Error() string {
	return fmt.Sprintf("hart: invalid permissions: page=%#x requested=%#x", f.PagePerms, uint32(f.Requested))
}

// Unwrap lets errors.Is(err, ErrInvalidPermissions) succeed.
func (f *PermissionFault) Unwrap() error { return ErrInvalidPermissions }

var _ error = &PermissionFault{}
