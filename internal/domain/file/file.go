package file

import (
	"time"

	"github.com/google/uuid"
)

// Type is the closed set of file kinds. Folders carry no content;
// files and images always have a content blob behind LocalPath.
type Type string

const (
	TypeFolder Type = "folder"
	TypeFile   Type = "file"
	TypeImage  Type = "image"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

// File is a catalog record describing a folder or a stored content item.
// ParentID is nil for top-level entries; on the wire the root parent is 0.
// LocalPath is the opaque content-store reference, empty for folders.
type File struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      Type
	IsPublic  bool
	ParentID  *uuid.UUID
	LocalPath string
	CreatedAt time.Time
}

// IsFolder reports whether the record is a folder and therefore has no content.
func (f *File) IsFolder() bool {
	return f.Type == TypeFolder
}

type CreateInput struct {
	UserID    uuid.UUID
	Name      string
	Type      Type
	IsPublic  bool
	ParentID  *uuid.UUID
	LocalPath string
}
