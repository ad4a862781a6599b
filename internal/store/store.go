// Package store keeps the back-office collections in process memory. Every
// collection is an ordered list: creation inserts at the front, updates merge
// in place and deletion splices the entry out. Nothing survives a restart.
package store

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailExists   = errors.New("email already exists")
	ErrBadPassword   = errors.New("current password is incorrect")
	ErrPasswordShort = errors.New("password must be at least 6 characters")
	ErrPasswordLong  = errors.New("password must be at most 72 bytes")
)

// TimeFormat renders timestamps the way the dashboard expects them.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

func timestamp(now func() time.Time) string {
	return now().UTC().Format(TimeFormat)
}

// PageParams parses page and pageSize query values, falling back to the
// defaults for anything that is not a number and clamping to valid bounds.
func PageParams(pageParam, sizeParam string) (int, int) {
	page := 1
	if n, err := strconv.Atoi(strings.TrimSpace(pageParam)); err == nil {
		page = n
	}
	size := DefaultPageSize
	if n, err := strconv.Atoi(strings.TrimSpace(sizeParam)); err == nil {
		size = n
	}
	return max(1, page), max(1, min(MaxPageSize, size))
}

// Paginate returns the requested page of items and the unpaged total.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	total := len(items)
	if page < 1 || pageSize < 1 || page-1 > total/pageSize {
		return []T{}, total
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, total
	}
	end := min(start+pageSize, total)
	return items[start:end], total
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
