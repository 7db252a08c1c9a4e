// Package jsonapi turns nested entity graphs into JSON:API-shaped response documents.
//
// An Entity is an ordered set of tagged values (scalars, nested entities, or sequences of
// entities) produced by the entity-construction layer. A TypeRegistry tells the serializer
// which nested fields are relationships and how to type and link them. Serialize is pure:
// it performs no I/O and is safe to call from any number of goroutines at once.
package jsonapi
