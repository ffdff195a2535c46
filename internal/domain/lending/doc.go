// Package lending defines the core entities of the library statistics
// dashboard: the loaded lending dataset, filtered views over it, the filter
// state supplied by the user interface and the contracts implemented by the
// application services.
package lending
