// Package domain defines the core entities of the postliste browser.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - Record: One disclosed document from the public records log
//   - Dataset: The merged, addressable record collection
//   - ChangeEvent: One entry of the change log
//   - QueryState: The shareable search/filter/sort/page parameters
//   - ResultPage: One page of a query result
//   - Statistics: Grouped counts for charts and summaries
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
