// Package memory provides in-memory implementations of driven store ports.
// They back the --ephemeral CLI mode and service tests.
package memory
