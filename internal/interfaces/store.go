package interfaces

import "scaffer/pkg/models"

// TemplateStore maps template identifiers to stored records
type TemplateStore interface {
	// List returns the stored identifiers containing filter (all when empty)
	List(filter string) ([]string, error)

	// Load reads the record stored under identifier
	Load(identifier string) (*models.Record, error)

	// Save writes record under identifier, replacing any previous record
	Save(identifier string, record *models.Record) error

	// Delete removes the record stored under identifier
	Delete(identifier string) error

	// Exists reports whether a record is stored under identifier
	Exists(identifier string) bool
}
