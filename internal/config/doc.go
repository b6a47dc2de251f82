// Package config loads, validates, and normalizes copydesk configuration
// from TOML files.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/copydesk/config.toml, then a copydesk.toml in the working
// directory. Missing files are not an error; defaults apply and validation
// still runs so a broken override fails fast.
package config
