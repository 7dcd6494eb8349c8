// Package structure loads YAML structure definitions into a tree of
// nodes. The loader only builds the tree; path validation and all
// filesystem work happen in the generator package.
package structure
