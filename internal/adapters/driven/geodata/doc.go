// Package geodata provides the JSON gazetteer implementation of the
// driven.EntitySource port.
//
// A small sample gazetteer is embedded in the binary so the engine
// works out of the box; a dataset path in the configuration overrides
// it. File-backed datasets are watched with fsnotify and reloaded
// wholesale on change.
package geodata
