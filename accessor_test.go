package driveaccess_test

import (
	"encoding/json"
	"reflect"
	"testing"

	driveaccess "github.com/openvault/go-driveaccess"
)

type fakeModel struct {
	id string
}

func (m fakeModel) Identifier() string {
	return m.id
}

func TestAccessor_ConstructorsReturnExpectedConcreteTypes(t *testing.T) {
	ref := fakeModel{id: "m1"}
	cases := []struct {
		name string
		got  driveaccess.Accessor
		want driveaccess.Accessor
	}{
		{"User", driveaccess.User("u1"), driveaccess.AccessorUser{ID: "u1"}},
		{"UserRef", driveaccess.UserRef(ref), driveaccess.AccessorUser{Ref: ref}},
		{"OrgUser", driveaccess.OrgUser("ou1"), driveaccess.AccessorOrgUser{ID: "ou1"}},
		{"OrgUserRef", driveaccess.OrgUserRef(ref), driveaccess.AccessorOrgUser{Ref: ref}},
		{"Agent", driveaccess.Agent("a1"), driveaccess.AccessorAgent{ID: "a1"}},
		{"AgentRef", driveaccess.AgentRef(ref), driveaccess.AccessorAgent{Ref: ref}},
		{"Client", driveaccess.OAuthClient("c1"), driveaccess.AccessorClient{ID: "c1"}},
		{"ClientRef", driveaccess.OAuthClientRef(ref), driveaccess.AccessorClient{Ref: ref}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if !reflect.DeepEqual(c.got, c.want) {
				t.Fatalf("mismatch for %s: got (%T) %#v, want (%T) %#v", c.name, c.got, c.got, c.want, c.want)
			}
		})
	}
}

func TestNormalizeAccessors_ReducesModelRefsToIDs(t *testing.T) {
	cases := []struct {
		name      string
		accessors []driveaccess.Accessor
		want      driveaccess.AccessorBundle
	}{
		{
			"raw id passes through",
			[]driveaccess.Accessor{driveaccess.User("u1")},
			driveaccess.AccessorBundle{User: "u1"},
		},
		{
			"model ref reduces to identifier",
			[]driveaccess.Accessor{driveaccess.UserRef(fakeModel{id: "u1"})},
			driveaccess.AccessorBundle{User: "u1"},
		},
		{
			"multiple kinds in one call",
			[]driveaccess.Accessor{driveaccess.User("u1"), driveaccess.Agent("a1")},
			driveaccess.AccessorBundle{User: "u1", Agent: "a1"},
		},
		{
			"all four kinds",
			[]driveaccess.Accessor{
				driveaccess.User("u1"),
				driveaccess.OrgUser("ou1"),
				driveaccess.AgentRef(fakeModel{id: "a1"}),
				driveaccess.OAuthClientRef(fakeModel{id: "c1"}),
			},
			driveaccess.AccessorBundle{User: "u1", OrgUser: "ou1", Agent: "a1", Client: "c1"},
		},
		{
			"same kind twice, last wins",
			[]driveaccess.Accessor{driveaccess.User("u1"), driveaccess.User("u2")},
			driveaccess.AccessorBundle{User: "u2"},
		},
		{
			"no accessors normalize to an empty bundle",
			nil,
			driveaccess.AccessorBundle{},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := driveaccess.NormalizeAccessors(c.accessors...); got != c.want {
				t.Fatalf("NormalizeAccessors() = %#v, want %#v", got, c.want)
			}
		})
	}
}

func TestNormalizeAccessors_IsPureAndDeterministic(t *testing.T) {
	accessors := []driveaccess.Accessor{
		driveaccess.UserRef(fakeModel{id: "u1"}),
		driveaccess.OrgUser("ou1"),
	}
	first := driveaccess.NormalizeAccessors(accessors...)
	second := driveaccess.NormalizeAccessors(accessors...)
	if first != second {
		t.Fatalf("normalizing twice differs: %#v vs %#v", first, second)
	}

	// A model-object variant and the equivalent id-string variant are
	// indistinguishable after normalization.
	byRef := driveaccess.NormalizeAccessors(driveaccess.UserRef(fakeModel{id: "u1"}))
	byID := driveaccess.NormalizeAccessors(driveaccess.User("u1"))
	if byRef != byID {
		t.Fatalf("ref and id normalize differently: %#v vs %#v", byRef, byID)
	}
}

func TestAccessorBundle_WireShape(t *testing.T) {
	cases := []struct {
		name   string
		bundle driveaccess.AccessorBundle
		want   string
	}{
		{"empty bundle has no keys", driveaccess.AccessorBundle{}, `{}`},
		{"only populated kinds appear", driveaccess.AccessorBundle{OrgUser: "ou1"}, `{"org_user":"ou1"}`},
		{
			"all kinds",
			driveaccess.AccessorBundle{User: "u1", OrgUser: "ou1", Agent: "a1", Client: "c1"},
			`{"user":"u1","org_user":"ou1","agent":"a1","client":"c1"}`,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := json.Marshal(c.bundle)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != c.want {
				t.Fatalf("marshal = %s, want %s", got, c.want)
			}
		})
	}
}
