// Package contact provides use cases for the public contact form and the
// back-office inbox built on top of it.
package contact

import "errors"

// ErrMessageNotFound indicates that the requested contact message was not found.
var ErrMessageNotFound = errors.New("contact message not found")
