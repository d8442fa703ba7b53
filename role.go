package driveaccess

import (
	"fmt"
	"strings"
)

// Role is a named bundle of actions granted to an accessor on a resource.
type Role string

const (
	RoleReadOnly    Role = "READ_ONLY"
	RoleViewer      Role = "VIEWER"
	RoleContributor Role = "CONTRIBUTOR"
	RoleEditor      Role = "EDITOR"
	RoleManager     Role = "MANAGER"
)

// ResourceKind is the kind of resource a grant targets. It determines which
// roles are legal.
type ResourceKind string

const (
	KindDrive     ResourceKind = "drive"
	KindDirectory ResourceKind = "directory"
	KindFile      ResourceKind = "file"
)

// IsValid reports whether r is a known role. Comparison is case-insensitive
// because roles are upper-cased on the wire but callers may hold them in
// either case.
func (r Role) IsValid() bool {
	switch r.canonical() {
	case RoleReadOnly, RoleViewer, RoleContributor, RoleEditor, RoleManager:
		return true
	default:
		return false
	}
}

// LegalFor reports whether the role may be granted on the given resource
// kind. CONTRIBUTOR implies the create action, which is meaningless on a
// file, so it is legal for drives and directories only. Every other known
// role is legal for all kinds; unknown roles are legal for none.
func (r Role) LegalFor(kind ResourceKind) bool {
	switch r.canonical() {
	case RoleContributor:
		return kind == KindDrive || kind == KindDirectory
	case RoleReadOnly, RoleViewer, RoleEditor, RoleManager:
		return kind == KindDrive || kind == KindDirectory || kind == KindFile
	default:
		return false
	}
}

// Actions returns the action set the role implies. The expansion itself is
// performed server-side; this catalog exists so a caller can reason about a
// role before making a round trip, and is kept in sync with server policy by
// contract. Unknown roles yield nil.
func (r Role) Actions() []Action {
	switch r.canonical() {
	case RoleReadOnly, RoleViewer:
		return []Action{ActionRead}
	case RoleContributor:
		return []Action{ActionCreate, ActionRead, ActionUpdate}
	case RoleEditor:
		return []Action{ActionRead, ActionUpdate, ActionDelete}
	case RoleManager:
		return []Action{ActionAll}
	default:
		return nil
	}
}

// String returns the canonical upper-cased form of the role.
func (r Role) String() string {
	return string(r.canonical())
}

func (r Role) canonical() Role {
	return Role(strings.ToUpper(string(r)))
}

// ValidateRole reports an error when the role is unknown or illegal for the
// given resource kind. This check is advisory: the engine never calls it
// before transmitting, because the server remains the authority on role
// legality. Callers who know the resource kind may use it to fail fast and
// skip a round trip.
func ValidateRole(role Role, kind ResourceKind) error {
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q: %w", string(role), ErrInvalidRole)
	}
	if !role.LegalFor(kind) {
		return fmt.Errorf("role %q is not legal for resource kind %q: %w", role.String(), string(kind), ErrInvalidRole)
	}
	return nil
}
