// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// EngineSettings reads the engine tuning knobs out of a ConfigStore,
// falling back to the domain defaults for anything unset.
package file
