package ports

import "resumemcp/internal/domain"

// DocumentLoader reads the input document.
type DocumentLoader interface {
	Load(path string) (*domain.Document, error)
}
