// Package memory provides process-local, in-memory implementations for the
// data storage interfaces defined in the internal/store package. State lives
// for the lifetime of the process; nothing is persisted across restarts.
// All operations are guarded by a per-store mutex so that ID assignment and
// collection mutation appear atomic to concurrent callers.
package memory
