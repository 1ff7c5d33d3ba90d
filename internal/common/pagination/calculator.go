// Package pagination implements offset pagination shared by the admin list
// endpoints (page/limit in the request body) and the public article listing
// (query parameters).
package pagination

// CalculateOffset converts a 1-based page number into a SQL OFFSET.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total/limit), never less than 1 so an
// empty listing still renders as page 1 of 1.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
