// Package tag provides use cases for managing tags, including the delete
// guard that keeps a tag alive while live articles reference it.
package tag

import "errors"

// Sentinel errors for tag use case operations.
var (
	// ErrTagNotFound indicates that the requested tag was not found.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateName indicates that another live tag already uses the name.
	ErrDuplicateName = errors.New("tag with this name already exists")

	// ErrTagInUse indicates that live articles still reference the tag,
	// which blocks a soft delete.
	ErrTagInUse = errors.New("tag is referenced by existing articles")
)
