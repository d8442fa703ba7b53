package driveaccess

// ItemID identifies a drive item, a file or directory within a drive.
type ItemID string

// DriveItem is a handle to one item within a drive. Like Drive it exists to
// resolve the resource URI for the access engine.
type DriveItem struct {
	transport Transport
	driveID   DriveID
	id        ItemID
}

// NewDriveItem creates a handle to the item with the given id in the given
// drive.
func NewDriveItem(transport Transport, driveID DriveID, id ItemID) *DriveItem {
	return &DriveItem{transport: transport, driveID: driveID, id: id}
}

// ID returns the item id.
func (i *DriveItem) ID() ItemID {
	return i.id
}

// DriveID returns the id of the drive containing the item.
func (i *DriveItem) DriveID() DriveID {
	return i.driveID
}

// URI returns the resource URI of the item, e.g. "/drive/123/item/456".
func (i *DriveItem) URI() string {
	return "/drive/" + string(i.driveID) + "/item/" + string(i.id)
}

// Access returns the access-control engine bound to this item.
func (i *DriveItem) Access() *AccessControl {
	return newAccessControl(i.transport, i.URI())
}
