// Package memory provides in-memory implementations of the storage ports.
// They back the CLI and service tests and hold no state between runs.
package memory
