package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Role identifies the kind of actor performing a lifecycle operation.
// It is a closed enumeration checked at the boundary: free-form role strings
// from the identity collaborator are converted exactly once via
// RoleFromString and travel through the core as Role values.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleBusiness is the shipper: posts loads, confirms matches, cancels
	// and closes them.
	RoleBusiness

	// RoleTrucker is the hauler: claims posted loads, picks them up and
	// delivers them.
	RoleTrucker
)

// getRoleStrings returns the wire representation of every role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleBusiness: "BUSINESS",
		RoleTrucker:  "TRUCKER",
	}
}

// RoleFromString parses the wire representation of a role ("BUSINESS" or
// "TRUCKER"). Anything else fails validation; callers must treat the input
// as untrusted.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "BUSINESS":
		return RoleBusiness, nil
	case "TRUCKER":
		return RoleTrucker, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleBusiness && r != RoleTrucker {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
