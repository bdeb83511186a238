package pagination

import "strconv"

// The API pages lists with limit/offset and caps limit at 1000.
const (
	DefaultPage     = 1
	DefaultPageSize = 1000
	MaxPageSize     = 1000
)

func Normalize(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize

	return page, pageSize, offset
}

func ComputeTotals(totalCount, pageSize int) int {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return totalPages
}

// Query returns the limit and offset parameters for the given page.
func Query(page, pageSize int) map[string]string {
	_, limit, offset := Normalize(page, pageSize)

	return map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	}
}
