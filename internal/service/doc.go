// Package service contains the greeting use cases. It coordinates domain
// construction, persistence and transactions, and translates store errors into
// the errors the API layer maps onto responses.
package service
