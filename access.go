// Package driveaccess is a client for the access-control layer of a
// hierarchical storage service: drives at the top level and drive items
// (files and directories) within them. It grants and revokes permissions
// for users, organization members, agents and OAuth clients, using either
// the role-based model or the legacy per-action model, and enumerates who
// currently has access.
package driveaccess

import (
	"bytes"
	"context"
	"encoding/json"
)

// AccessControl is the grant/revoke/list engine for one resource. It is
// bound at construction to an immutable resource URI and holds no other
// state, so an instance is safely reusable for repeated and concurrent
// calls. Every operation issues exactly one request; nothing is memoized.
type AccessControl struct {
	transport Transport
	path      string
}

// NewAccessControl creates an engine bound to the given resource URI, e.g.
// "/drive/123". The empty URI is the unbound default; its operations target
// "/access" directly. Most callers obtain an engine from Drive.Access or
// DriveItem.Access instead.
func NewAccessControl(transport Transport, resourceURI string) (*AccessControl, error) {
	if err := validateResourceURI(resourceURI); err != nil {
		return nil, err
	}
	return newAccessControl(transport, resourceURI), nil
}

func newAccessControl(transport Transport, resourceURI string) *AccessControl {
	return &AccessControl{transport: transport, path: accessPath(resourceURI)}
}

type grantRoleRequest struct {
	Accessor accessorBundle `json:"accessor"`
	Role     string         `json:"role"`
	Options  *GrantOptions  `json:"options,omitempty"`
}

type legacyGrantRequest struct {
	Accessor accessorBundle `json:"accessor"`
	Action   Action         `json:"action"`
}

type revokeRequest struct {
	Accessor accessorBundle `json:"accessor"`
}

type legacyRevokeRequest struct {
	Accessor accessorBundle `json:"accessor"`
	Action   Action         `json:"action"`
}

// GrantRole grants a role to an accessor on the bound resource. The role is
// upper-cased on the wire. Options control server-side propagation and are
// omitted from the request entirely when nil; the server may fan the grant
// out to many sub-resources but the client issues exactly one request.
//
// Role legality for the resource kind is not checked client-side: the
// server is the authority (use ValidateRole to fail fast when the kind is
// known). Which GrantResult fields come back is a server-determined
// projection of the resource kind and options.
func (a *AccessControl) GrantRole(ctx context.Context, role Role, options *GrantOptions, accessors ...Accessor) (*GrantResult, error) {
	body := grantRoleRequest{
		Accessor: normalizeAccessors(accessors),
		Role:     role.String(),
		Options:  options,
	}
	raw, err := a.transport.Post(ctx, a.path, body)
	if err != nil {
		return nil, normalizeError(err)
	}
	return decodeResult[GrantResult](raw, "grant")
}

// Grant grants a single action to an accessor on the bound resource.
//
// Deprecated: Grant is the legacy per-action model, kept for resources that
// predate roles. It carries no cascade semantics. New code should use
// GrantRole.
func (a *AccessControl) Grant(ctx context.Context, action Action, accessors ...Accessor) (*LegacyGrantResult, error) {
	body := legacyGrantRequest{
		Accessor: normalizeAccessors(accessors),
		Action:   action,
	}
	raw, err := a.transport.Post(ctx, a.path, body)
	if err != nil {
		return nil, normalizeError(err)
	}
	return decodeResult[LegacyGrantResult](raw, "grant")
}

// Revoke deactivates all permissions the accessor holds on the bound
// resource in one call. Revoking an accessor with no existing grants is not
// an error; it succeeds with RevokedCount zero.
func (a *AccessControl) Revoke(ctx context.Context, accessors ...Accessor) (*RevokeResult, error) {
	body := revokeRequest{Accessor: normalizeAccessors(accessors)}
	raw, err := a.transport.Delete(ctx, a.path, body)
	if err != nil {
		return nil, normalizeError(err)
	}
	return decodeResult[RevokeResult](raw, "revoke")
}

// RevokeAction deactivates the accessor's grant for one specific action,
// leaving grants for other actions intact.
//
// Deprecated: RevokeAction is the legacy per-action model. New code should
// use Revoke.
func (a *AccessControl) RevokeAction(ctx context.Context, action Action, accessors ...Accessor) (*LegacyRevokeResult, error) {
	body := legacyRevokeRequest{
		Accessor: normalizeAccessors(accessors),
		Action:   action,
	}
	raw, err := a.transport.Delete(ctx, a.path, body)
	if err != nil {
		return nil, normalizeError(err)
	}
	return decodeResult[LegacyRevokeResult](raw, "revoke")
}

// List enumerates every accessor with access to the bound resource and
// their roles. A resource with no grants yields an empty Accessors slice,
// not an error.
func (a *AccessControl) List(ctx context.Context) (*ListResult, error) {
	raw, err := a.transport.Get(ctx, a.path)
	if err != nil {
		return nil, normalizeError(err)
	}
	return decodeResult[ListResult](raw, "list")
}

// unwrapData returns the inner payload when the response body nests it
// under a "data" field, and the body itself otherwise. Some server
// responses are wrapped and others are not; every operation tolerates both
// through this one function.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return raw
	}
	return envelope.Data
}

func decodeResult[T any](raw json.RawMessage, operation string) (*T, error) {
	var result T
	if err := json.Unmarshal(unwrapData(raw), &result); err != nil {
		return nil, newAPIError("failed to decode "+operation+" response", err)
	}
	return &result, nil
}
