// Package repository defines the persistence interfaces the use cases depend
// on. Implementations live under internal/infra/adapter/persistence.
package repository

import "errors"

// ErrDuplicate is returned by Create/Update implementations when a store
// unique constraint rejects the write (slug, tag name, email). It is the
// authoritative conflict signal: pre-check queries in the services give
// friendly errors, but concurrent writers are caught here.
var ErrDuplicate = errors.New("duplicate key")
