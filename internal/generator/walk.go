package generator

import "github.com/structkit/structkit/internal/structure"

// Walk materializes the root nodes in declaration order, depth-first
// pre-order, and returns the run's report. Each node is visited
// exactly once; there is no retry loop.
//
// Configuration errors (an invalid option set, a node path escaping
// the base path) are returned before anything is written, so
// a rejected structure leaves the filesystem untouched. Per-node I/O
// failures land in the report instead.
func Walk(nodes []*structure.Node, opts Options, renderer Renderer) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := CheckPaths(nodes, opts.BasePath); err != nil {
		return nil, err
	}

	m := NewMaterializer(opts, renderer)
	report := &Report{}
	for _, node := range nodes {
		m.Materialize(node, report)
	}
	return report, nil
}

// CheckPaths resolves every node path in the tree against basePath and
// returns the first validation failure. No filesystem access.
func CheckPaths(nodes []*structure.Node, basePath string) error {
	for _, node := range nodes {
		if _, err := Resolve(basePath, node.Path); err != nil {
			return err
		}
		if err := CheckPaths(node.Children, basePath); err != nil {
			return err
		}
	}
	return nil
}
