package entity

import "time"

// ContactStatus tracks how far a contact-form message has been handled.
type ContactStatus string

const (
	ContactNew      ContactStatus = "NEW"
	ContactRead     ContactStatus = "READ"
	ContactArchived ContactStatus = "ARCHIVED"
)

// Valid reports whether the status is a member of the enum.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactArchived:
		return true
	}
	return false
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
