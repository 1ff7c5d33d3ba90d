package entity

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
)

// Field length bounds shared by the create and update validators.
const (
	MaxTitleLength       = 150
	MaxSummaryLength     = 300
	MaxDescriptionLength = 300
	MaxNameLength        = 100
	MaxTagNameLength     = 100
	MaxSubjectLength     = 150
	MaxBodyLength        = 2000
	MaxSlugLength        = 150

	// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
	maxURLLength = 2048
)

// slugPattern accepts URL-safe slugs: letters, digits and hyphens.
// Matching is case-insensitive; slugs are stored as supplied.
var slugPattern = regexp.MustCompile(`(?i)^[a-z0-9-]+$`)

// ValidateSlug validates the format of a URL slug.
// Returns a ValidationError if the slug is empty, too long, or contains
// characters outside [a-z0-9-].
func ValidateSlug(field, slug string) error {
	if slug == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if len(slug) > MaxSlugLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", MaxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: field, Message: "must contain only letters, digits and hyphens"}
	}
	return nil
}

// ValidateEmail validates an email address using the standard address grammar.
func ValidateEmail(field, email string) error {
	if email == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: field, Message: "must be a valid email address"}
	}
	return nil
}

// ValidateURL validates the format of a URL field such as a thumbnail or
// avatar. It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and
// has a valid host. The empty string is accepted; URL fields are optional.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return nil
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "must be a valid URL"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "must have a valid host"}
	}
	return nil
}

// ValidateRequired checks that a mandatory string field is present.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateMaxLength checks a string field against an upper length bound.
func ValidateMaxLength(field, value string, max int) error {
	if len(value) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", max),
		}
	}
	return nil
}
