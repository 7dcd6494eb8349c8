package structure

import "os"

// Kind distinguishes file and directory nodes.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the kind name for error messages and logs.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is one entry in a structure definition. Path is relative to the
// generation base path; children of a directory already carry the
// joined path, so consumers never need to re-join parent segments.
type Node struct {
	Path     string
	Kind     Kind
	Content  string
	Mode     os.FileMode // 0 means default permissions
	Children []*Node
}

// Count returns the number of file and directory nodes in the tree.
func Count(nodes []*Node) (files, dirs int) {
	for _, n := range nodes {
		if n.Kind == KindDirectory {
			dirs++
			f, d := Count(n.Children)
			files += f
			dirs += d
		} else {
			files++
		}
	}
	return files, dirs
}
