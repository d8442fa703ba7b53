// Package accessmust wraps the driveaccess engine with panic-based error
// handling.
//
// It provides the same grant/revoke/list operations as the root-level
// driveaccess package, but instead of returning errors, all exported methods
// panic on failure. It is intended for scripts and test fixtures where an
// access failure is unrecoverable anyway.
package accessmust

import (
	"context"

	"github.com/openvault/go-driveaccess"
)

// AccessControl is the grant/revoke/list engine for one resource.
//
// All methods of AccessControl panic on error instead of returning an error
// value.
type AccessControl struct {
	access *driveaccess.AccessControl
}

// New wraps an existing driveaccess engine.
func New(access *driveaccess.AccessControl) *AccessControl {
	return &AccessControl{access: access}
}

// ForDrive creates a panicking engine bound to the given drive.
func ForDrive(transport driveaccess.Transport, id driveaccess.DriveID) *AccessControl {
	return New(driveaccess.NewDrive(transport, id).Access())
}

// ForItem creates a panicking engine bound to the given drive item.
func ForItem(transport driveaccess.Transport, driveID driveaccess.DriveID, id driveaccess.ItemID) *AccessControl {
	return New(driveaccess.NewDriveItem(transport, driveID, id).Access())
}

// GrantRole grants a role to an accessor on the bound resource.
//
// It panics if the grant fails.
func (a *AccessControl) GrantRole(ctx context.Context, role driveaccess.Role, options *driveaccess.GrantOptions, accessors ...driveaccess.Accessor) *driveaccess.GrantResult {
	return must1(a.access.GrantRole(ctx, role, options, accessors...))
}

// Grant grants a single action to an accessor on the bound resource using
// the legacy per-action model.
//
// It panics if the grant fails.
func (a *AccessControl) Grant(ctx context.Context, action driveaccess.Action, accessors ...driveaccess.Accessor) *driveaccess.LegacyGrantResult {
	return must1(a.access.Grant(ctx, action, accessors...))
}

// Revoke deactivates all permissions the accessor holds on the bound
// resource.
//
// It panics if the revoke fails. A revoke that deactivated nothing is a
// success, not a panic.
func (a *AccessControl) Revoke(ctx context.Context, accessors ...driveaccess.Accessor) *driveaccess.RevokeResult {
	return must1(a.access.Revoke(ctx, accessors...))
}

// RevokeAction deactivates the accessor's grant for one specific action
// using the legacy per-action model.
//
// It panics if the revoke fails.
func (a *AccessControl) RevokeAction(ctx context.Context, action driveaccess.Action, accessors ...driveaccess.Accessor) *driveaccess.LegacyRevokeResult {
	return must1(a.access.RevokeAction(ctx, action, accessors...))
}

// List enumerates every accessor with access to the bound resource.
//
// It panics if the listing fails.
func (a *AccessControl) List(ctx context.Context) *driveaccess.ListResult {
	return must1(a.access.List(ctx))
}
