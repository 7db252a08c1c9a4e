// Package domain defines the greeting entity, its validation rules and its
// mapping onto the tagged values rendered by the JSON:API serializer.
//
// Domain types do not know about storage or HTTP.
package domain
