package structure

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Structure definitions look like:
//
//	files:
//	  - app:
//	      - config.yaml: "version: {{ .version }}"
//	      - data: []
//	  - README.md:
//	      content: "# {{ .project_name }}"
//	      permissions: "0600"
//	  - .gitkeep:
//
// Each entry is a single-key mapping from a path segment to the node
// body: a scalar is inline file content, a sequence is a directory
// with children, a mapping may set content and permissions, and an
// empty body is an empty file.

// Load reads and parses a structure definition file.
func Load(filePath string) ([]*Node, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure file: %w", err)
	}
	return Parse(data)
}

// Parse parses a structure definition from bytes.
func Parse(data []byte) ([]*Node, error) {
	var doc struct {
		Files yaml.Node `yaml:"files"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Files.Kind == 0 {
		return nil, fmt.Errorf("structure definition has no 'files' list")
	}
	if doc.Files.Kind == yaml.ScalarNode && doc.Files.Tag == "!!null" {
		return nil, nil
	}
	return parseEntries(&doc.Files, "")
}

// parseEntries converts a YAML sequence into nodes, joining each entry
// name onto the parent directory's path.
func parseEntries(seq *yaml.Node, parent string) ([]*Node, error) {
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of entries", seq.Line)
	}

	nodes := make([]*Node, 0, len(seq.Content))
	for _, entry := range seq.Content {
		if entry.Kind != yaml.MappingNode || len(entry.Content) != 2 {
			return nil, fmt.Errorf("line %d: each entry must be a single 'name: body' mapping", entry.Line)
		}

		name := entry.Content[0].Value
		if name == "" {
			return nil, fmt.Errorf("line %d: entry has an empty name", entry.Line)
		}

		node, err := parseBody(path.Join(parent, name), entry.Content[1])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// parseBody builds a node from an entry's value.
func parseBody(nodePath string, body *yaml.Node) (*Node, error) {
	switch body.Kind {
	case yaml.ScalarNode:
		// Null scalar is an empty file.
		content := body.Value
		if body.Tag == "!!null" {
			content = ""
		}
		return &Node{Path: nodePath, Kind: KindFile, Content: content}, nil

	case yaml.SequenceNode:
		children, err := parseEntries(body, nodePath)
		if err != nil {
			return nil, err
		}
		return &Node{Path: nodePath, Kind: KindDirectory, Children: children}, nil

	case yaml.MappingNode:
		return parseFileMapping(nodePath, body)

	default:
		return nil, fmt.Errorf("line %d: unsupported body for %q", body.Line, nodePath)
	}
}

// parseFileMapping handles the long file form with content and
// permissions keys.
func parseFileMapping(nodePath string, body *yaml.Node) (*Node, error) {
	node := &Node{Path: nodePath, Kind: KindFile}

	for i := 0; i+1 < len(body.Content); i += 2 {
		key := body.Content[i].Value
		value := body.Content[i+1]

		switch key {
		case "content":
			node.Content = value.Value
		case "permissions":
			mode, err := strconv.ParseUint(value.Value, 8, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid permissions %q for %q", value.Line, value.Value, nodePath)
			}
			node.Mode = os.FileMode(mode)
		default:
			return nil, fmt.Errorf("line %d: unknown key %q for %q (valid: content, permissions)", body.Content[i].Line, key, nodePath)
		}
	}
	return node, nil
}
