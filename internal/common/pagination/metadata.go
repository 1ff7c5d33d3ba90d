package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page        int   `json:"page"`        // Current page number (1-based)
	Limit       int   `json:"limit"`       // Requested items per page
	ShowPerPage int   `json:"showPerPage"` // Items actually on this page
	Total       int64 `json:"total"`       // Total number of items across all pages
	TotalPages  int   `json:"totalPages"`  // Calculated total number of pages
}

// NewMetadata assembles response metadata for one page of results.
// shown is the number of items on the current page, which differs from
// limit on the last page.
func NewMetadata(params Params, shown int, total int64) Metadata {
	return Metadata{
		Page:        params.Page,
		Limit:       params.Limit,
		ShowPerPage: shown,
		Total:       total,
		TotalPages:  CalculateTotalPages(total, params.Limit),
	}
}
