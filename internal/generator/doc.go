// Package generator materializes a structure tree on disk.
//
// The walker visits nodes depth-first in declaration order and hands
// each one to the materializer, which resolves the target path,
// decides how to handle a pre-existing target under the run's
// strategy, and performs the write. Outcomes and per-node failures
// accumulate in a report; a failed node never aborts the walk.
//
// Strategies form a closed set (overwrite, skip, append, rename,
// backup) and the decision is a total function over it; it never
// inspects file contents.
package generator
