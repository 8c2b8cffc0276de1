package models

// Record is the stored definition of a project skeleton.
type Record struct {
	Structure    Structure `yaml:"structure"`
	StartCommand string    `yaml:"start_command"`
}

// Structure holds the directories and files of a template.
// Directories are kept in order and never de-duplicated.
type Structure struct {
	Directories []string `yaml:"directories"`
	Files       []File   `yaml:"files"`
}

// File is one file of a template with its content history.
type File struct {
	// Path is relative to the project root and may include subdirectories.
	Path string `yaml:"path"`

	// ContentHistory holds every authored version; only the newest is instantiated.
	ContentHistory History `yaml:"content_history"`
}

// NewFile creates a file entry whose history starts with content.
func NewFile(path, content string) File {
	return File{Path: path, ContentHistory: NewHistory(content)}
}

// NewRecord creates a record with non-nil slices.
func NewRecord(directories []string, files []File, startCommand string) *Record {
	if directories == nil {
		directories = []string{}
	}
	if files == nil {
		files = []File{}
	}
	return &Record{
		Structure: Structure{
			Directories: directories,
			Files:       files,
		},
		StartCommand: startCommand,
	}
}

// FilePaths returns the path of every file in order.
func (r *Record) FilePaths() []string {
	paths := make([]string, 0, len(r.Structure.Files))
	for _, f := range r.Structure.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// FindFile returns the index of the file with the given path, or -1.
func (r *Record) FindFile(path string) int {
	for i, f := range r.Structure.Files {
		if f.Path == path {
			return i
		}
	}
	return -1
}

// Equal reports structural equality. Nil and empty slices are considered equal.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.StartCommand != other.StartCommand {
		return false
	}
	if len(r.Structure.Directories) != len(other.Structure.Directories) {
		return false
	}
	for i := range r.Structure.Directories {
		if r.Structure.Directories[i] != other.Structure.Directories[i] {
			return false
		}
	}
	if len(r.Structure.Files) != len(other.Structure.Files) {
		return false
	}
	for i := range r.Structure.Files {
		a, b := r.Structure.Files[i], other.Structure.Files[i]
		if a.Path != b.Path || !a.ContentHistory.Equal(b.ContentHistory) {
			return false
		}
	}
	return true
}
