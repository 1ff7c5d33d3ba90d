package entity

import "time"

// UserRole controls what a user may do in the back-office.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
	RoleAuthor UserRole = "AUTHOR"
)

// Valid reports whether the role is a member of the enum.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleAuthor:
		return true
	}
	return false
}

// Gender is optional profile data for an author.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether the gender is a member of the enum.
// The empty string is accepted because the field is optional.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, "":
		return true
	}
	return false
}

// User is an author or back-office operator. Email is unique.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      UserRole
	Gender    Gender
	Bio       string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
