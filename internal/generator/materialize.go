package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/structkit/structkit/internal/structure"
)

// Renderer produces final file content from a node's raw content and
// the run's variable mapping. The mapping is opaque to this package.
type Renderer interface {
	Render(name, content string, vars map[string]string) ([]byte, error)
}

// passthrough is used when no renderer is configured.
type passthrough struct{}

func (passthrough) Render(_ string, content string, _ map[string]string) ([]byte, error) {
	return []byte(content), nil
}

// Options is the fully resolved configuration for one run. It is
// read-only for the duration of the walk; flag and environment
// resolution happen in the commands layer.
type Options struct {
	BasePath   string
	Strategy   Strategy
	BackupRoot string
	DryRun     bool
	Vars       map[string]string
}

func (o Options) validate() error {
	if o.Strategy == StrategyBackup && o.BackupRoot == "" {
		return ErrMissingBackupRoot
	}
	return nil
}

// Materializer resolves one node to a write action and performs it.
type Materializer struct {
	opts     Options
	renderer Renderer
	backups  *BackupManager
}

// NewMaterializer creates a materializer. A nil renderer means file
// content is written as-is.
func NewMaterializer(opts Options, renderer Renderer) *Materializer {
	if renderer == nil {
		renderer = passthrough{}
	}
	m := &Materializer{opts: opts, renderer: renderer}
	if opts.BackupRoot != "" {
		m.backups = NewBackupManager(opts.BackupRoot)
	}
	return m
}

// Materialize visits a node and, for directories, its children in
// declared order. Failures are recorded in the report and do not
// propagate; only a directory that cannot be created short-circuits
// its descendants, since their paths are unresolvable without it.
func (m *Materializer) Materialize(node *structure.Node, report *Report) {
	absPath, err := Resolve(m.opts.BasePath, node.Path)
	if err != nil {
		report.fail(node.Path, err)
		return
	}

	if node.Kind == structure.KindDirectory {
		m.materializeDir(node, absPath, report)
	} else {
		m.materializeFile(node, absPath, report)
	}
}

func (m *Materializer) materializeDir(node *structure.Node, absPath string, report *Report) {
	info, err := os.Stat(absPath)
	exists := err == nil

	if exists && !info.IsDir() {
		report.fail(node.Path, fmt.Errorf("%w: %s exists as a file", ErrTypeMismatch, node.Path))
		return
	}

	outcome := Decide(m.opts.Strategy, node.Kind, exists, absPath)

	switch outcome.Action {
	case ActionSkip:
		report.add(node.Path, ActionSkip)

	case ActionBackupWrite:
		if !m.opts.DryRun {
			if _, err := m.backups.Backup(absPath, node.Path); err != nil {
				// The directory itself stays usable, so children are
				// still processed below.
				report.fail(node.Path, err)
				break
			}
			if err := os.MkdirAll(absPath, 0755); err != nil {
				report.fail(node.Path, err)
				return
			}
		}
		report.add(node.Path, ActionBackupWrite)

	default:
		if !m.opts.DryRun {
			if err := os.MkdirAll(absPath, 0755); err != nil {
				report.fail(node.Path, err)
				return
			}
		}
		report.add(node.Path, ActionWrite)
	}

	for _, child := range node.Children {
		m.Materialize(child, report)
	}
}

func (m *Materializer) materializeFile(node *structure.Node, absPath string, report *Report) {
	content, err := m.renderer.Render(node.Path, node.Content, m.opts.Vars)
	if err != nil {
		report.fail(node.Path, err)
		return
	}

	info, err := os.Stat(absPath)
	exists := err == nil

	if exists && info.IsDir() {
		report.fail(node.Path, fmt.Errorf("%w: %s exists as a directory", ErrTypeMismatch, node.Path))
		return
	}

	outcome := Decide(m.opts.Strategy, node.Kind, exists, absPath)

	if m.opts.DryRun {
		report.add(node.Path, outcome.Action)
		return
	}

	switch outcome.Action {
	case ActionSkip:

	case ActionWrite:
		err = m.write(absPath, content, node.Mode)

	case ActionAppend:
		err = appendTo(absPath, content)

	case ActionRename:
		err = m.write(outcome.RenamePath, content, node.Mode)

	case ActionBackupWrite:
		if _, backupErr := m.backups.Backup(absPath, node.Path); backupErr != nil {
			report.fail(node.Path, backupErr)
			return
		}
		err = m.write(absPath, content, node.Mode)
	}

	if err != nil {
		report.fail(node.Path, err)
		return
	}
	report.add(node.Path, outcome.Action)
}

// write creates parent directories as needed and writes the full
// content, truncating any existing file.
func (m *Materializer) write(absPath string, content []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = 0644
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(absPath, content, mode)
}

// appendTo writes content at end-of-file. No separator is inserted
// beyond what the content itself carries.
func appendTo(absPath string, content []byte) error {
	f, err := os.OpenFile(absPath, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
