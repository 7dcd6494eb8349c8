package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/structkit/structkit/internal/structure"
)

// Decide maps (strategy, node kind, target existence) to the action
// taken for one node. The decision never looks at file contents:
// rewriting identical content under overwrite is still a write.
//
// Directories only ever need an idempotent create, so overwrite and
// rename decay to a plain write for them; append has no meaning for
// a directory and decays to skip.
//
// For rename, the candidate path is probed against the live
// filesystem at decision time rather than write time, so a concurrent
// writer can still take the candidate between the two.
func Decide(strategy Strategy, kind structure.Kind, exists bool, absPath string) Outcome {
	if !exists {
		return Outcome{Action: ActionWrite}
	}

	if kind == structure.KindDirectory {
		switch strategy {
		case StrategySkip, StrategyAppend:
			return Outcome{Action: ActionSkip}
		case StrategyBackup:
			return Outcome{Action: ActionBackupWrite}
		default:
			return Outcome{Action: ActionWrite}
		}
	}

	switch strategy {
	case StrategySkip:
		return Outcome{Action: ActionSkip}
	case StrategyAppend:
		return Outcome{Action: ActionAppend}
	case StrategyRename:
		return Outcome{Action: ActionRename, RenamePath: renameCandidate(absPath)}
	case StrategyBackup:
		return Outcome{Action: ActionBackupWrite}
	default:
		return Outcome{Action: ActionWrite}
	}
}

// renameCandidate derives a non-existing sibling path by suffixing the
// filename with an incrementing counter: name_1.ext, name_2.ext, …
func renameCandidate(absPath string) string {
	dir := filepath.Dir(absPath)
	base := filepath.Base(absPath)

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}
