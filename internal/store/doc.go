// Package store persists content items, users, and the login session in
// SQLite and exposes helpers for driving the item lifecycle.
//
// The Store manages database connections, schema initialization, and the
// single-session file lock on the data directory. Items capture workflow
// status, authorship, scheduling, and external publish references so the
// workflow engine can coordinate without additional state.
//
// Treat this package as the single source of truth for item semantics; when
// you add new statuses or metadata fields, update schema.sql and bump
// schemaVersion.
package store
