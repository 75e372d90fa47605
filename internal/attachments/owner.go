// Package attachments persists owner records in a relational unit of work and
// their attachments in the blob store, keeping each owner's blob reference in step.
//
// The two stores share no transaction. Writes are ordered so that a failure
// leaves an orphaned blob rather than a reference to a missing one, except on
// delete, where the blob goes first and a failed owner removal leaves a dangling
// reference that readers report as files.ErrNotFound.
package attachments

import "time"

// Owner is the pointer side of an owner record. Merge copies the caller-editable
// fields of from onto the receiver; it never copies blob references.
type Owner[T any] interface {
	*T
	Merge(from *T)
}

// PhotoOwner holds one image reference.
type PhotoOwner[T any] interface {
	Owner[T]
	PhotoID() string
	SetPhotoID(id string)
}

// SmallPhotoOwner holds an image reference and an independent thumbnail reference.
type SmallPhotoOwner[T any] interface {
	PhotoOwner[T]
	SmallPhotoID() string
	SetSmallPhotoID(id string)
}

// FileOwner holds one document reference.
type FileOwner[T any] interface {
	Owner[T]
	FileID() string
	SetFileID(id string)
}

// Toucher is implemented by owners that track modification time.
type Toucher interface {
	Touch(now time.Time)
}

func touch(owner any) {
	if t, ok := owner.(Toucher); ok {
		t.Touch(time.Now().UTC())
	}
}
