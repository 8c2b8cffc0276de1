package template

import (
	"strings"

	"scaffer/pkg/models"
)

// ProjectNamePlaceholder is replaced by the project name in file content.
// It is matched literally and case-sensitively; there is no escaping.
const ProjectNamePlaceholder = "{{project_name}}"

// Substitute replaces every occurrence of ProjectNamePlaceholder in content.
func Substitute(content, projectName string) string {
	return strings.ReplaceAll(content, ProjectNamePlaceholder, projectName)
}

// RenderedFile is a template file ready to be written.
type RenderedFile struct {
	// Path is relative to the project root.
	Path string

	Content []byte
}

// Processor renders template records for one project.
type Processor struct {
	projectName string
}

// NewProcessor creates a processor that substitutes projectName.
func NewProcessor(projectName string) *Processor {
	return &Processor{
		projectName: projectName,
	}
}

// Render returns every file of record with its current content substituted.
func (p *Processor) Render(record *models.Record) []RenderedFile {
	files := make([]RenderedFile, 0, len(record.Structure.Files))
	for _, f := range record.Structure.Files {
		files = append(files, RenderedFile{
			Path:    f.Path,
			Content: []byte(Substitute(f.ContentHistory.Current(), p.projectName)),
		})
	}
	return files
}

// Truncate collapses whitespace in s and shortens it to at most maxLen runes
// for display, ending with an ellipsis. Stored content is never truncated.
func Truncate(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-3]) + "..."
}
