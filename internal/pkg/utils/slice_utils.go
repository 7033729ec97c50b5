package utils

// Paginate returns the window [offset, offset+limit) of items.
// A non-positive limit means "everything after offset"; an offset past the end yields an empty slice.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
