package driveaccess

// AccessorType identifies the kind of entity a permission is granted to,
// as it appears on the wire and in listing results.
type AccessorType string

const (
	AccessorTypeUser    AccessorType = "user"
	AccessorTypeOrgUser AccessorType = "org_user"
	AccessorTypeAgent   AccessorType = "agent"
	AccessorTypeClient  AccessorType = "client"
)

// Identifiable is the capability an accessor model reference must expose so
// it can be reduced to its identifier before transmission.
type Identifiable interface {
	Identifier() string
}

// Accessor represents an entity that can be granted access to a drive or
// drive item: a user, an organization-membership record, an autonomous
// agent, or an OAuth client.
// This is a sealed interface - use the constructor functions User, OrgUser,
// Agent, or OAuthClient (or their Ref variants for model references).
type Accessor interface {
	doNotImplement(Accessor)
}

// User creates an Accessor for a user identified by a raw id.
func User(id string) Accessor {
	return AccessorUser{ID: id}
}

// UserRef creates an Accessor for a user model reference.
func UserRef(ref Identifiable) Accessor {
	return AccessorUser{Ref: ref}
}

// OrgUser creates an Accessor for an organization-membership record
// identified by a raw id.
func OrgUser(id string) Accessor {
	return AccessorOrgUser{ID: id}
}

// OrgUserRef creates an Accessor for an organization-membership model
// reference.
func OrgUserRef(ref Identifiable) Accessor {
	return AccessorOrgUser{Ref: ref}
}

// Agent creates an Accessor for an autonomous agent identified by a raw id.
func Agent(id string) Accessor {
	return AccessorAgent{ID: id}
}

// AgentRef creates an Accessor for an agent model reference.
func AgentRef(ref Identifiable) Accessor {
	return AccessorAgent{Ref: ref}
}

// OAuthClient creates an Accessor for an OAuth client identified by a raw
// id.
func OAuthClient(id string) Accessor {
	return AccessorClient{ID: id}
}

// OAuthClientRef creates an Accessor for an OAuth client model reference.
func OAuthClientRef(ref Identifiable) Accessor {
	return AccessorClient{Ref: ref}
}

// AccessorUser represents a user, by raw id or by model reference.
type AccessorUser struct {
	ID  string
	Ref Identifiable
}

func (AccessorUser) doNotImplement(Accessor) {}

// AccessorOrgUser represents an organization-membership record, by raw id or
// by model reference.
type AccessorOrgUser struct {
	ID  string
	Ref Identifiable
}

func (AccessorOrgUser) doNotImplement(Accessor) {}

// AccessorAgent represents an autonomous agent, by raw id or by model
// reference.
type AccessorAgent struct {
	ID  string
	Ref Identifiable
}

func (AccessorAgent) doNotImplement(Accessor) {}

// AccessorClient represents an OAuth client, by raw id or by model reference.
type AccessorClient struct {
	ID  string
	Ref Identifiable
}

func (AccessorClient) doNotImplement(Accessor) {}

// accessorBundle is the normalized accessor as transmitted: bare string ids
// only, one key per populated kind. Kinds absent from the input are absent
// from the bundle.
type accessorBundle struct {
	User    string `json:"user,omitempty"`
	OrgUser string `json:"org_user,omitempty"`
	Agent   string `json:"agent,omitempty"`
	Client  string `json:"client,omitempty"`
}

// normalizeAccessors reduces the given accessors to a bundle of bare ids.
// A model reference resolves to its Identifier; a raw id passes through
// unchanged. More than one kind may be populated in a single call. When the
// same kind appears more than once the last occurrence wins. An empty input
// yields an empty bundle; whether that is an error is decided server-side.
func normalizeAccessors(accessors []Accessor) accessorBundle {
	var bundle accessorBundle
	for _, accessor := range accessors {
		switch a := accessor.(type) {
		case AccessorUser:
			bundle.User = resolveID(a.ID, a.Ref)
		case AccessorOrgUser:
			bundle.OrgUser = resolveID(a.ID, a.Ref)
		case AccessorAgent:
			bundle.Agent = resolveID(a.ID, a.Ref)
		case AccessorClient:
			bundle.Client = resolveID(a.ID, a.Ref)
		}
	}
	return bundle
}

func resolveID(id string, ref Identifiable) string {
	if ref != nil {
		return ref.Identifier()
	}
	return id
}
