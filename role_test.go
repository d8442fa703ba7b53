package driveaccess_test

import (
	"errors"
	"reflect"
	"testing"

	driveaccess "github.com/openvault/go-driveaccess"
)

func TestRole_LegalFor(t *testing.T) {
	allKinds := []driveaccess.ResourceKind{driveaccess.KindDrive, driveaccess.KindDirectory, driveaccess.KindFile}

	legal := map[driveaccess.Role]map[driveaccess.ResourceKind]bool{
		driveaccess.RoleReadOnly:    {driveaccess.KindDrive: true, driveaccess.KindDirectory: true, driveaccess.KindFile: true},
		driveaccess.RoleViewer:      {driveaccess.KindDrive: true, driveaccess.KindDirectory: true, driveaccess.KindFile: true},
		driveaccess.RoleContributor: {driveaccess.KindDrive: true, driveaccess.KindDirectory: true, driveaccess.KindFile: false},
		driveaccess.RoleEditor:      {driveaccess.KindDrive: true, driveaccess.KindDirectory: true, driveaccess.KindFile: true},
		driveaccess.RoleManager:     {driveaccess.KindDrive: true, driveaccess.KindDirectory: true, driveaccess.KindFile: true},
	}

	for role, byKind := range legal {
		for _, kind := range allKinds {
			if got := role.LegalFor(kind); got != byKind[kind] {
				t.Errorf("%s.LegalFor(%s) = %v, want %v", role, kind, got, byKind[kind])
			}
		}
	}

	for _, kind := range allKinds {
		if driveaccess.Role("OWNER").LegalFor(kind) {
			t.Errorf("unknown role legal for %s", kind)
		}
	}
}

func TestRole_LegalForIsCaseInsensitive(t *testing.T) {
	if !driveaccess.Role("editor").LegalFor(driveaccess.KindFile) {
		t.Error("lower-cased EDITOR should be legal for a file")
	}
	if driveaccess.Role("contributor").LegalFor(driveaccess.KindFile) {
		t.Error("lower-cased CONTRIBUTOR should stay illegal for a file")
	}
}

func TestRole_Actions(t *testing.T) {
	cases := []struct {
		role driveaccess.Role
		want []driveaccess.Action
	}{
		{driveaccess.RoleReadOnly, []driveaccess.Action{driveaccess.ActionRead}},
		{driveaccess.RoleViewer, []driveaccess.Action{driveaccess.ActionRead}},
		{driveaccess.RoleContributor, []driveaccess.Action{driveaccess.ActionCreate, driveaccess.ActionRead, driveaccess.ActionUpdate}},
		{driveaccess.RoleEditor, []driveaccess.Action{driveaccess.ActionRead, driveaccess.ActionUpdate, driveaccess.ActionDelete}},
		{driveaccess.RoleManager, []driveaccess.Action{driveaccess.ActionAll}},
		{driveaccess.Role("OWNER"), nil},
	}

	for _, c := range cases {
		c := c
		t.Run(string(c.role), func(t *testing.T) {
			if got := c.role.Actions(); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("%s.Actions() = %v, want %v", c.role, got, c.want)
			}
		})
	}
}

func TestRole_StringUpperCases(t *testing.T) {
	if got := driveaccess.Role("editor").String(); got != "EDITOR" {
		t.Fatalf("String() = %q, want %q", got, "EDITOR")
	}
}

func TestValidateRole(t *testing.T) {
	if err := driveaccess.ValidateRole(driveaccess.RoleContributor, driveaccess.KindDrive); err != nil {
		t.Fatalf("CONTRIBUTOR on drive: %v", err)
	}
	if err := driveaccess.ValidateRole(driveaccess.RoleContributor, driveaccess.KindDirectory); err != nil {
		t.Fatalf("CONTRIBUTOR on directory: %v", err)
	}

	err := driveaccess.ValidateRole(driveaccess.RoleContributor, driveaccess.KindFile)
	if !errors.Is(err, driveaccess.ErrInvalidRole) {
		t.Fatalf("CONTRIBUTOR on file: got %v, want ErrInvalidRole", err)
	}

	err = driveaccess.ValidateRole(driveaccess.Role("OWNER"), driveaccess.KindDrive)
	if !errors.Is(err, driveaccess.ErrInvalidRole) {
		t.Fatalf("unknown role: got %v, want ErrInvalidRole", err)
	}
}

func TestAction_IsValid(t *testing.T) {
	valid := []driveaccess.Action{
		driveaccess.ActionCreate,
		driveaccess.ActionRead,
		driveaccess.ActionUpdate,
		driveaccess.ActionDelete,
		driveaccess.ActionAll,
	}
	for _, action := range valid {
		if !action.IsValid() {
			t.Errorf("%s should be valid", action)
		}
	}
	if driveaccess.Action("share").IsValid() {
		t.Error("unknown action should be invalid")
	}
}
