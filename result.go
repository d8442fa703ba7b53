package driveaccess

// Permission is a single permission record as stored by the access service.
type Permission struct {
	ID           string       `json:"id,omitempty"`
	AccessorID   string       `json:"accessor_id,omitempty"`
	AccessorType AccessorType `json:"accessor_type,omitempty"`
	Action       Action       `json:"action,omitempty"`
	ResourceID   string       `json:"resource_id,omitempty"`
	Active       bool         `json:"active,omitempty"`
}

// PermissionResult is one outcome per underlying action a role grant
// expanded to. A failed expansion carries the server-reported error instead
// of a permission record.
type PermissionResult struct {
	Action     Action      `json:"action"`
	Success    bool        `json:"success"`
	Permission *Permission `json:"permission,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// FolderPermissions groups the permission results produced for one ancestor
// folder when a path-mode grant walks up the ancestor chain.
type FolderPermissions struct {
	FolderID    string             `json:"folder_id"`
	FolderName  string             `json:"folder_name,omitempty"`
	Depth       int                `json:"depth"`
	Permissions []PermissionResult `json:"permissions"`
}

// CascadedItem is the per-item outcome of a cascaded or recursive grant.
type CascadedItem struct {
	ItemID  string `json:"item_id"`
	Name    string `json:"name,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CascadeSummary aggregates the fan-out of a grant that propagated to many
// sub-resources server-side.
type CascadeSummary struct {
	Total   int            `json:"total"`
	Granted int            `json:"granted"`
	Failed  int            `json:"failed"`
	Items   []CascadedItem `json:"items,omitempty"`
}

// GrantResult is the outcome of a role-based grant. Which of the optional
// fields are populated is a server-determined projection of the resource
// kind and the options supplied: a plain grant fills Permissions, a drive
// cascade adds DrivePermissions and CascadedItems, a path-mode item grant
// fills FolderPermissions and TargetPermissions, and a recursive grant adds
// NestedItems.
type GrantResult struct {
	DriveID    string `json:"drive_id,omitempty"`
	ItemID     string `json:"item_id,omitempty"`
	AccessorID string `json:"accessor_id"`
	Role       Role   `json:"role"`

	Permissions       []PermissionResult  `json:"permissions,omitempty"`
	DrivePermissions  []PermissionResult  `json:"drive_permissions,omitempty"`
	FolderPermissions []FolderPermissions `json:"folder_permissions,omitempty"`
	TargetPermissions []PermissionResult  `json:"target_permissions,omitempty"`
	CascadedItems     *CascadeSummary     `json:"cascaded_items,omitempty"`
	NestedItems       *CascadeSummary     `json:"nested_items,omitempty"`
}

// LegacyGrantResult is the outcome of a deprecated per-action grant.
type LegacyGrantResult struct {
	DriveID    string      `json:"drive_id,omitempty"`
	ItemID     string      `json:"item_id,omitempty"`
	AccessorID string      `json:"accessor_id"`
	Action     Action      `json:"action"`
	Permission *Permission `json:"permission,omitempty"`
}

// RevokeResult is the outcome of a bulk revoke. RevokedCount is the number
// of permission records deactivated; zero means the accessor had no access,
// which is a valid, non-error outcome.
type RevokeResult struct {
	DriveID      string `json:"drive_id,omitempty"`
	ItemID       string `json:"item_id,omitempty"`
	AccessorID   string `json:"accessor_id"`
	RevokedCount int    `json:"revoked_count"`
}

// LegacyRevokeResult is the outcome of a deprecated per-action revoke.
// Grants for other actions remain intact.
type LegacyRevokeResult struct {
	DriveID      string `json:"drive_id,omitempty"`
	ItemID       string `json:"item_id,omitempty"`
	AccessorID   string `json:"accessor_id"`
	Action       Action `json:"action"`
	DeletedCount int    `json:"deleted_count"`
}

// AccessorInfo is one accessor and its role as enumerated by List.
type AccessorInfo struct {
	AccessorID   string       `json:"accessor_id"`
	AccessorType AccessorType `json:"accessor_type"`
	Role         Role         `json:"role"`
	Permissions  []Permission `json:"permissions,omitempty"`
}

// ListResult enumerates every accessor with access to a resource. An empty
// Accessors slice means no accessor has been granted access yet.
type ListResult struct {
	DriveID   string         `json:"drive_id,omitempty"`
	ItemID    string         `json:"item_id,omitempty"`
	Accessors []AccessorInfo `json:"accessors"`
}
