// Package store defines the persistence contracts used by the service layer
// and the errors every store implementation reports.
package store
