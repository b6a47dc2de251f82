// Package notifications delivers workflow events to the user and to
// optional push channels.
//
// The Center implements the single in-flight notification model: emitting a
// new notification replaces the currently displayed one. Each event also
// fans out to a Service; the default implementation publishes to ntfy using
// the configured topic and degrades to a no-op when none is set.
//
// Extend this package if you need alternative transports; workflow code
// depends only on the Center and the simple Service interface.
package notifications
