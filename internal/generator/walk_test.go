package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/structkit/structkit/internal/generator"
	"github.com/structkit/structkit/internal/structure"
)

func file(path, content string) *structure.Node {
	return &structure.Node{Path: path, Kind: structure.KindFile, Content: content}
}

func dir(path string, children ...*structure.Node) *structure.Node {
	return &structure.Node{Path: path, Kind: structure.KindDirectory, Children: children}
}

func runWalk(t *testing.T, nodes []*structure.Node, opts generator.Options) *generator.Report {
	t.Helper()
	report, err := generator.Walk(nodes, opts, nil)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	return report
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(content)
}

func listDir(t *testing.T, path string) []string {
	t.Helper()
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("failed to list %s: %v", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWalk_CreatesDeclaredStructure(t *testing.T) {
	base := t.TempDir()

	nodes := []*structure.Node{
		dir("app", file("app/config.yaml", "v=1")),
	}

	report := runWalk(t, nodes, generator.Options{BasePath: base})

	content := readFile(t, filepath.Join(base, "app", "config.yaml"))
	if content != "v=1" {
		t.Errorf("wrong content: got %q, want %q", content, "v=1")
	}

	records := report.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Path != "app" || records[0].Action != generator.ActionWrite {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Path != "app/config.yaml" || records[1].Action != generator.ActionWrite {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestWalk_SkipIsIdempotent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "keep.txt")

	if err := os.WriteFile(target, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	nodes := []*structure.Node{file("keep.txt", "replacement")}
	opts := generator.Options{BasePath: base, Strategy: generator.StrategySkip}

	for range 2 {
		report := runWalk(t, nodes, opts)
		if report.Records()[0].Action != generator.ActionSkip {
			t.Errorf("expected skip, got %s", report.Records()[0].Action)
		}
	}

	if got := readFile(t, target); got != "original" {
		t.Errorf("skip mutated the target: %q", got)
	}
}

func TestWalk_AppendTwiceAppendsTwice(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "log.txt")

	if err := os.WriteFile(target, []byte("start;"), 0644); err != nil {
		t.Fatal(err)
	}

	nodes := []*structure.Node{file("log.txt", "more;")}
	opts := generator.Options{BasePath: base, Strategy: generator.StrategyAppend}

	runWalk(t, nodes, opts)
	runWalk(t, nodes, opts)

	if got := readFile(t, target); got != "start;more;more;" {
		t.Errorf("unexpected content after two appends: %q", got)
	}
}

func TestWalk_RenameKeepsOriginalAcrossRuns(t *testing.T) {
	base := t.TempDir()
	nodes := []*structure.Node{file("note.txt", "hello")}
	opts := generator.Options{BasePath: base, Strategy: generator.StrategyRename}

	// First run writes the original, the next two write renamed
	// siblings and leave it alone.
	runWalk(t, nodes, opts)
	runWalk(t, nodes, opts)
	runWalk(t, nodes, opts)

	for _, name := range []string{"note.txt", "note_1.txt", "note_2.txt"} {
		if got := readFile(t, filepath.Join(base, name)); got != "hello" {
			t.Errorf("%s: unexpected content %q", name, got)
		}
	}
	if names := listDir(t, base); len(names) != 3 {
		t.Errorf("expected 3 files, got %v", names)
	}
}

func TestWalk_BackupRetainsHistory(t *testing.T) {
	base := t.TempDir()
	backupRoot := t.TempDir()
	target := filepath.Join(base, "config.yaml")

	if err := os.WriteFile(target, []byte("gen0"), 0644); err != nil {
		t.Fatal(err)
	}

	nodes := []*structure.Node{file("config.yaml", "gen1")}
	opts := generator.Options{
		BasePath:   base,
		Strategy:   generator.StrategyBackup,
		BackupRoot: backupRoot,
	}

	runWalk(t, nodes, opts)
	runWalk(t, nodes, opts)

	if got := readFile(t, target); got != "gen1" {
		t.Errorf("target not overwritten: %q", got)
	}
	if got := readFile(t, filepath.Join(backupRoot, "config.yaml")); got != "gen0" {
		t.Errorf("first backup: unexpected content %q", got)
	}
	if got := readFile(t, filepath.Join(backupRoot, "config_1.yaml")); got != "gen1" {
		t.Errorf("second backup: unexpected content %q", got)
	}
}

func TestWalk_BackupWithoutRootIsConfigError(t *testing.T) {
	nodes := []*structure.Node{file("a.txt", "x")}
	_, err := generator.Walk(nodes, generator.Options{
		BasePath: t.TempDir(),
		Strategy: generator.StrategyBackup,
	}, nil)

	if err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestWalk_UnsafePathWritesNothing(t *testing.T) {
	base := t.TempDir()

	nodes := []*structure.Node{
		file("ok.txt", "fine"),
		dir("nested", file("nested/../../evil.txt", "nope")),
	}

	_, err := generator.Walk(nodes, generator.Options{BasePath: base}, nil)
	if err == nil {
		t.Fatal("expected path validation error")
	}

	if names := listDir(t, base); len(names) != 0 {
		t.Errorf("rejected structure left traces: %v", names)
	}
}

func TestWalk_PartialFailureContinues(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	base := t.TempDir()

	// Sibling B writes into a read-only directory and must fail
	// without taking A or C down with it.
	locked := filepath.Join(base, "locked")
	if err := os.Mkdir(locked, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	nodes := []*structure.Node{
		file("a.txt", "A"),
		file("locked/b.txt", "B"),
		file("c.txt", "C"),
	}

	report := runWalk(t, nodes, generator.Options{BasePath: base})

	if report.Failed() != 1 {
		t.Fatalf("expected exactly 1 failure, got %d", report.Failed())
	}
	records := report.Records()
	if records[1].Action != generator.ActionFailed {
		t.Errorf("expected locked/b.txt to fail, got %s", records[1].Action)
	}

	if got := readFile(t, filepath.Join(base, "a.txt")); got != "A" {
		t.Errorf("a.txt: %q", got)
	}
	if got := readFile(t, filepath.Join(base, "c.txt")); got != "C" {
		t.Errorf("c.txt: %q", got)
	}
}

func TestWalk_TypeMismatchShortCircuitsChildren(t *testing.T) {
	base := t.TempDir()

	// A file squats on the declared directory path.
	if err := os.WriteFile(filepath.Join(base, "app"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	nodes := []*structure.Node{
		dir("app", file("app/config.yaml", "v=1")),
		file("after.txt", "still runs"),
	}

	report := runWalk(t, nodes, generator.Options{BasePath: base})

	records := report.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records (child skipped), got %d", len(records))
	}
	if records[0].Action != generator.ActionFailed {
		t.Errorf("expected app to fail, got %s", records[0].Action)
	}
	if records[1].Path != "after.txt" || records[1].Action != generator.ActionWrite {
		t.Errorf("later sibling should still complete: %+v", records[1])
	}
}

func TestWalk_DryRunLeavesNoTrace(t *testing.T) {
	strategies := []generator.Strategy{
		generator.StrategyOverwrite,
		generator.StrategySkip,
		generator.StrategyAppend,
		generator.StrategyRename,
		generator.StrategyBackup,
	}

	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			base := t.TempDir()
			backupRoot := t.TempDir()
			target := filepath.Join(base, "present.txt")

			if err := os.WriteFile(target, []byte("untouched"), 0644); err != nil {
				t.Fatal(err)
			}

			nodes := []*structure.Node{
				file("present.txt", "changed"),
				dir("newdir", file("newdir/new.txt", "new")),
			}

			report := runWalk(t, nodes, generator.Options{
				BasePath:   base,
				Strategy:   strategy,
				BackupRoot: backupRoot,
				DryRun:     true,
			})

			if report.Len() != 3 {
				t.Errorf("dry run should still report outcomes, got %d records", report.Len())
			}
			if got := readFile(t, target); got != "untouched" {
				t.Errorf("dry run mutated target: %q", got)
			}
			if names := listDir(t, base); len(names) != 1 {
				t.Errorf("dry run created entries: %v", names)
			}
			if names := listDir(t, backupRoot); len(names) != 0 {
				t.Errorf("dry run created backups: %v", names)
			}
		})
	}
}

func TestWalk_OverwriteTruncatesExisting(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.yaml")

	if err := os.WriteFile(target, []byte("a much longer original body"), 0644); err != nil {
		t.Fatal(err)
	}

	runWalk(t, []*structure.Node{file("config.yaml", "short")},
		generator.Options{BasePath: base, Strategy: generator.StrategyOverwrite})

	if got := readFile(t, target); got != "short" {
		t.Errorf("overwrite did not truncate: %q", got)
	}
}

func TestWalk_FileModeFromStructure(t *testing.T) {
	base := t.TempDir()

	nodes := []*structure.Node{
		{Path: "run.sh", Kind: structure.KindFile, Content: "#!/bin/sh\n", Mode: 0755},
	}
	runWalk(t, nodes, generator.Options{BasePath: base})

	info, err := os.Stat(filepath.Join(base, "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("wrong mode: %v", info.Mode().Perm())
	}
}
