package jsonapi

import "github.com/goccy/go-json"

// Links holds the self link of a document or relationship list.
type Links struct {
	Self string `json:"self"`
}

// Document is the JSON:API-shaped rendering of one entity.
type Document struct {
	Data  Resource `json:"data"`
	Links *Links   `json:"links,omitempty"`
}

// Resource is the data member of a Document. Attributes and Relationships are nil when
// the entity has none.
type Resource struct {
	ID            string         `json:"id"`
	Type          string         `json:"type,omitempty"`
	Attributes    *Entity        `json:"attributes,omitempty"`
	Relationships *Relationships `json:"relationships,omitempty"`
}

// Relationship is either a single nested document or a list of them. Exactly one of
// Single and List is set.
type Relationship struct {
	Single *Document
	List   *RelationshipList
}

// MarshalJSON encodes whichever variant is set.
func (r Relationship) MarshalJSON() ([]byte, error) {
	if r.List != nil {
		return json.MarshalNoEscape(r.List)
	}
	return json.MarshalNoEscape(r.Single)
}

// RelationshipList renders a to-many relationship.
type RelationshipList struct {
	Links Links       `json:"links"`
	Data  []*Document `json:"data"`
}

type namedRelationship struct {
	key string
	rel Relationship
}

// Relationships is the ordered set of relationships of a Resource.
type Relationships struct {
	entries []namedRelationship
}

func (r *Relationships) add(key string, rel Relationship) {
	r.entries = append(r.entries, namedRelationship{key: key, rel: rel})
}

// Get returns the relationship stored under key.
func (r *Relationships) Get(key string) (Relationship, bool) {
	if r == nil {
		return Relationship{}, false
	}
	for _, e := range r.entries {
		if e.key == key {
			return e.rel, true
		}
	}
	return Relationship{}, false
}

// Len returns the number of relationships.
func (r *Relationships) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Keys returns the relationship names in order.
func (r *Relationships) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.key
	}
	return keys
}

// MarshalJSON encodes the relationships as an object in insertion order.
func (r Relationships) MarshalJSON() ([]byte, error) {
	return marshalObject(len(r.entries), func(i int) (string, any) {
		return r.entries[i].key, r.entries[i].rel
	})
}
