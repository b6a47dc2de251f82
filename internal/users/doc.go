// Package users resolves user identifiers to human-readable identities.
// Unknown ids resolve to a placeholder rather than an error so display and
// search code never has to branch on missing authors.
package users
