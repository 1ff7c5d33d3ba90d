package pagination

// Response wraps one page of DTOs with its metadata. Every list endpoint
// returns this shape, so clients page through articles, tags and contact
// messages the same way.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse pairs a page of items with its metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
