package driveaccess

// GrantMode selects how an item-level grant propagates. Path mode grants
// read access up the ancestor chain so the target becomes reachable;
// recursive mode grants the role down into the descendants of a directory.
type GrantMode string

const (
	GrantModePath      GrantMode = "path"
	GrantModeRecursive GrantMode = "recursive"
)

// GrantOptions controls server-side propagation of a role grant. All fields
// are optional. CascadeToItems and CascadeToFolders apply to drive grants
// only; Mode, FolderRole and ItemRole apply to item grants only. The engine
// transmits whatever combination the caller supplies without cross-checking
// the flags against the resource kind; incompatible combinations are
// reported by the server.
type GrantOptions struct {
	// CascadeToItems propagates the grant to every existing item in the
	// drive.
	CascadeToItems bool `json:"cascade_to_items,omitempty"`

	// CascadeToFolders propagates the grant to folder-type items only.
	CascadeToFolders bool `json:"cascade_to_folders,omitempty"`

	// Mode is the item-level propagation mode, GrantModePath or
	// GrantModeRecursive.
	Mode GrantMode `json:"mode,omitempty"`

	// FolderRole is the role applied to ancestor folders when Mode is
	// GrantModePath.
	FolderRole Role `json:"folder_role,omitempty"`

	// ItemRole is the role applied to descendants when Mode is
	// GrantModeRecursive.
	ItemRole Role `json:"item_role,omitempty"`
}
