// Package generator drafts article and product copy through an
// OpenRouter-compatible chat completion API.
package generator
