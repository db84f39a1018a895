package postgres

import (
	"errors"
	"fmt"
)

// Write batch sizes, kept under backend request-size limits.
const (
	insertChunkSize = 200
	tagChunkSize    = 500
	pageSize        = 1000
)

// forEachChunk runs fn over [lo, hi) index windows of size chunk. A failed
// chunk does not stop the loop; all chunk errors are joined and returned so
// the caller can log them while keeping the rows that did land.
func forEachChunk(total, chunk int, fn func(lo, hi int) error) error {
	var errs []error
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		if err := fn(lo, hi); err != nil {
			errs = append(errs, fmt.Errorf("rows %d..%d: %w", lo, hi, err))
		}
	}
	return errors.Join(errs...)
}
