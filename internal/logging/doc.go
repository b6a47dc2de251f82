// Package logging builds slog loggers for copydesk with console and JSON
// output formats. The console handler collapses a "component" attribute into
// the message prefix so workflow logs read naturally.
package logging
