package impl

import (
	domainerrors "stockhub/internal/domain/errors"
)

// pageBounds turns a 1-based page request into an offset, enforcing the rule
// that a page past the end is a caller error rather than an empty result.
// An empty collection still serves page 1.
func pageBounds(total int64, page, size int) (offset, totalPages int, err error) {
	if page < 1 {
		page = 1
	}

	totalPages = int((total + int64(size) - 1) / int64(size))
	if totalPages > 0 && page > totalPages {
		return 0, 0, domainerrors.ErrPageOutOfRange
	}

	return (page - 1) * size, totalPages, nil
}
