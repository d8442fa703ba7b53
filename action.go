package driveaccess

// Action is a single permission action in the legacy per-action model.
// ActionAll is the wildcard covering every action.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionAll    Action = "*"
)

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionAll:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	return string(a)
}
