// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - EntitySource: Supplies the five entity collections
//   - KeyValueStore: Recent-search persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MapController: Map viewport commands. Without it, selections still
//     update recency and filters but move no viewport.
//   - FilterForm: Filter checkbox state. Without it, selections skip the
//     filter side effect.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
