package jsonapi

import "errors"

// ErrMissingIdentifier is returned when an entity passed to Serialize has no id field,
// or its id is null. It signals a defect in the code that built the entity, not a
// problem with the request, and must never be shown to a client verbatim.
var ErrMissingIdentifier = errors.New("all API entities should have IDs")
