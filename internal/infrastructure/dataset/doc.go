// Package dataset reads delimited lending files into in-memory datasets.
// Loads are memoized per path, so the parsed table is shared read-only by
// every session for the lifetime of the process.
package dataset
