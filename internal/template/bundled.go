package template

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/output"
)

//go:embed bundled/*.yaml
var bundledFS embed.FS

// BundledIdentifiers returns the identifiers of the example templates shipped with scaffer.
func BundledIdentifiers() []string {
	entries, err := fs.ReadDir(bundledFS, "bundled")
	if err != nil {
		return nil
	}

	identifiers := make([]string, 0, len(entries))
	for _, entry := range entries {
		identifiers = append(identifiers, entry.Name()[:len(entry.Name())-len(Extension)])
	}
	return identifiers
}

// InstallBundled copies the bundled example templates into dir, overwriting
// files with the same name.
func InstallBundled(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return scerrors.IOFailure("create template directory", dir, err)
	}

	entries, err := fs.ReadDir(bundledFS, "bundled")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		data, err := bundledFS.ReadFile(path.Join("bundled", entry.Name()))
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, entry.Name())
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return scerrors.IOFailure("install bundled template", dest, err)
		}
		output.Debug("installed bundled template", "path", dest)
	}

	return nil
}
