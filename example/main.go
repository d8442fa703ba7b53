package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/openvault/go-driveaccess"
)

func newClient() *driveaccess.Client {
	client, err := driveaccess.NewClient(driveaccess.Config{
		BaseURL: os.Getenv("DRIVEACCESS_BASE_URL"),
		Token:   os.Getenv("DRIVEACCESS_TOKEN"),
		Logger:  stdr.New(log.New(os.Stderr, "", log.LstdFlags)),
	})
	if err != nil {
		log.Panic(err)
	}
	return client
}

func main() {
	ctx := context.Background()
	client := newClient()

	// Bind the engine to a drive.
	drive := driveaccess.NewDrive(client, "123")
	access := drive.Access()

	// Grant EDITOR to a user, cascading to every existing item in the drive.
	granted, err := access.GrantRole(ctx, driveaccess.RoleEditor,
		&driveaccess.GrantOptions{CascadeToItems: true},
		driveaccess.User("u1"),
	)
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("granted %s to %s\n", granted.Role, granted.AccessorID)
	if granted.CascadedItems != nil {
		fmt.Printf("cascaded to %d items (%d granted, %d failed)\n",
			granted.CascadedItems.Total, granted.CascadedItems.Granted, granted.CascadedItems.Failed)
	}

	// Grant READ_ONLY on a nested item in path mode so it becomes reachable.
	item := drive.Item("456")
	reachable, err := item.Access().GrantRole(ctx, driveaccess.RoleViewer,
		&driveaccess.GrantOptions{Mode: driveaccess.GrantModePath, FolderRole: driveaccess.RoleReadOnly},
		driveaccess.OrgUser("ou1"),
	)
	if err != nil {
		log.Panic(err)
	}
	for _, folder := range reachable.FolderPermissions {
		fmt.Printf("ancestor %s (depth %d): %d permissions\n", folder.FolderID, folder.Depth, len(folder.Permissions))
	}

	// Enumerate who has access now.
	listing, err := access.List(ctx)
	if err != nil {
		log.Panic(err)
	}
	for _, accessor := range listing.Accessors {
		fmt.Printf("%s %s has role %s\n", accessor.AccessorType, accessor.AccessorID, accessor.Role)
	}

	// Revoke everything the user holds on the drive. Zero revoked records is
	// a valid outcome, not an error.
	revoked, err := access.Revoke(ctx, driveaccess.User("u1"))
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("revoked %d permissions from %s\n", revoked.RevokedCount, revoked.AccessorID)
}
