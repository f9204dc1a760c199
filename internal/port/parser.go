package port

import "doccov/internal/domain"

// OutlineParser extracts the structural outline of one source file:
// an ordered sequence of documentable units in source appearance order.
type OutlineParser interface {
	Parse(filename, content string) ([]domain.Unit, error)
}
