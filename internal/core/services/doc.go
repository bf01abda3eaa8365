// Package services implements the driving port interfaces.
// Services contain the core business logic - tokenization, scoring,
// tiered ranking, recency and selection dispatch - and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies beyond
// the uuid used for dispatch log correlation.
package services
