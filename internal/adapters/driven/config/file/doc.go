// Package file provides file-based configuration storage.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage under ~/.scribe
//   - LoadSettings/SaveSettings: mapping between config keys, secret
//     environment variables, and domain.AppSettings
package file
