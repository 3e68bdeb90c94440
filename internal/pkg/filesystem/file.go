package filesystem

// File is an in-memory representation of a file.
type File struct {
	Path    string
	Desc    string
	Content string
}

func NewFile(path, content string) *File {
	return &File{Path: path, Content: content}
}

// SetDescription - the description is used in error messages, for example "package manifest".
func (f *File) SetDescription(desc string) *File {
	f.Desc = desc
	return f
}

// Description returns the description or the path if the description is not set.
func (f *File) Description() string {
	if f.Desc == "" {
		return f.Path
	}
	return f.Desc
}
