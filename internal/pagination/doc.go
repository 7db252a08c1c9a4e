// Package pagination validates offset/limit query arguments and builds the navigation
// links of a paginated collection response.
//
// Offsets are expected to be non-negative multiples of the page size, so that every
// page boundary can be reached from offset zero and the generated links reproduce the
// query string a client would send.
package pagination
