// Package services holds shared plumbing for copydesk's external
// collaborators: sentinel error markers and wrapping helpers used by the
// generator and cms clients.
package services
