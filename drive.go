package driveaccess

// DriveID identifies a drive, the top-level storage container.
type DriveID string

// Drive is a handle to one drive. It resolves the resource URI the access
// engine operates on; drive content management itself is outside this
// package.
type Drive struct {
	transport Transport
	id        DriveID
}

// NewDrive creates a handle to the drive with the given id.
func NewDrive(transport Transport, id DriveID) *Drive {
	return &Drive{transport: transport, id: id}
}

// ID returns the drive id.
func (d *Drive) ID() DriveID {
	return d.id
}

// URI returns the resource URI of the drive, e.g. "/drive/123".
func (d *Drive) URI() string {
	return "/drive/" + string(d.id)
}

// Access returns the access-control engine bound to this drive.
func (d *Drive) Access() *AccessControl {
	return newAccessControl(d.transport, d.URI())
}

// Item returns a handle to an item within this drive.
func (d *Drive) Item(id ItemID) *DriveItem {
	return &DriveItem{transport: d.transport, driveID: d.id, id: id}
}
