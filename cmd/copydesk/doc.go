// Command copydesk is the CLI for the content operations desk: drafting
// items, walking them through review, and publishing them to configured
// sites.
package main
