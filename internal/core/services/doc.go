// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ingestion pipeline (load, normalise, assemble) lives in ingest.go
// and report.go; the crew runner in crew.go.
package services
