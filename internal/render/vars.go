package render

import (
	"text/template/parse"
)

// Vars lists the variable names referenced by a node's content, in
// first-use order. The CLI uses this to prompt for values that are
// missing from the input store before a run starts.
func (r *Renderer) Vars(name, content string) ([]string, error) {
	tmpl, err := r.parse(name, content)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	collectFields(tmpl.Tree.Root, seen, &names)
	return names, nil
}

// collectFields walks a template parse tree gathering top-level field
// references ({{ .name }}, {{ if .name }}, …).
func collectFields(node parse.Node, seen map[string]bool, names *[]string) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, item := range n.Nodes {
			collectFields(item, seen, names)
		}
	case *parse.ActionNode:
		collectPipe(n.Pipe, seen, names)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, seen, names)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, seen, names)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, seen, names)
	case *parse.TemplateNode:
		collectPipe(n.Pipe, seen, names)
	}
}

func collectBranch(branch *parse.BranchNode, seen map[string]bool, names *[]string) {
	collectPipe(branch.Pipe, seen, names)
	collectFields(branch.List, seen, names)
	collectFields(branch.ElseList, seen, names)
}

func collectPipe(pipe *parse.PipeNode, seen map[string]bool, names *[]string) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				if len(a.Ident) > 0 && !seen[a.Ident[0]] {
					seen[a.Ident[0]] = true
					*names = append(*names, a.Ident[0])
				}
			case *parse.PipeNode:
				collectPipe(a, seen, names)
			}
		}
	}
}
