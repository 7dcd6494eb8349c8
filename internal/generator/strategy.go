package generator

import (
	"fmt"
	"strings"
)

// Strategy controls how an existing target is handled.
type Strategy int

const (
	StrategyOverwrite Strategy = iota
	StrategySkip
	StrategyAppend
	StrategyRename
	StrategyBackup
)

// StrategyNames lists every recognized strategy, in CLI help order.
var StrategyNames = []string{"overwrite", "skip", "append", "rename", "backup"}

// ParseStrategy maps a strategy name to its value. Matching is
// case-insensitive; an unknown name fails with ErrInvalidStrategy
// before any node is visited.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "overwrite":
		return StrategyOverwrite, nil
	case "skip":
		return StrategySkip, nil
	case "append":
		return StrategyAppend, nil
	case "rename":
		return StrategyRename, nil
	case "backup":
		return StrategyBackup, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStrategy, name, strings.Join(StrategyNames, ", "))
	}
}

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	if s < StrategyOverwrite || s > StrategyBackup {
		return "unknown"
	}
	return StrategyNames[s]
}

// Action is the concrete operation decided for one node.
type Action int

const (
	ActionWrite Action = iota
	ActionSkip
	ActionAppend
	ActionRename
	ActionBackupWrite
	ActionFailed
)

// String returns a past-tense label for summaries.
func (a Action) String() string {
	switch a {
	case ActionWrite:
		return "created"
	case ActionSkip:
		return "skipped"
	case ActionAppend:
		return "appended"
	case ActionRename:
		return "renamed"
	case ActionBackupWrite:
		return "backed up"
	case ActionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-node decision produced by the conflict policy.
// It is ephemeral: decided, executed, and recorded, never persisted.
type Outcome struct {
	Action Action

	// RenamePath is the probed write target when Action is
	// ActionRename. The original file is left untouched.
	RenamePath string
}
