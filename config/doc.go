// Package config loads identification run parameters from an optional TOML
// file, the way the reference library's dzgiid.par was read, generalized
// into a typed Go struct with documented defaults. CLI flags in cmd/sysid
// override whatever the file supplies.
package config
