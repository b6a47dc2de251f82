// Package cms pushes finished content to WordPress-compatible sites over
// their REST API using application-password credentials.
package cms
