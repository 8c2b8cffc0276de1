package interfaces

import "context"

// IgnoreFetcher retrieves a .gitignore body by language name
type IgnoreFetcher interface {
	// Fetch returns the ignore-file body for identifier
	Fetch(ctx context.Context, identifier string) (string, error)
}
