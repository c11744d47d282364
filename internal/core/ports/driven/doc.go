// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DataSource: Fetches published data files (directory, web, memory)
//   - ConfigStore: Application configuration (TOML file, memory)
//   - ViewStore: Saved view persistence (SQLite, memory)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
