// Package workflow implements the content status state machine: the
// transition table, role and ownership checks, bulk scheduling, and the
// publish write-back.
//
// All status changes flow through the Engine so validation failures leave
// the store untouched and every successful transition emits exactly one
// user notification. The transition table in rules.go is the single source
// of truth; new statuses must be added there so every entry point picks
// them up.
package workflow
