package jsonapi

import "fmt"

const idField = "id"

// Serialize renders entity as a JSON:API document.
//
// The root descriptor of registry, when bound, supplies the document type and self link.
// Every other field is classified as follows:
//   - a mapping whose key is registered becomes a singular relationship, serialized
//     recursively with the root rebound to that key's descriptor;
//   - a non-empty sequence whose key is registered becomes a list relationship linked to
//     the key's collection, each element serialized recursively the same way;
//   - unregistered mappings and sequences, and empty sequences, are attributes copied
//     verbatim without looking inside them;
//   - numbers and booleans are attributes copied as-is, other scalars are attributes
//     holding their string representation, and nulls stay null.
//
// Serialize fails with ErrMissingIdentifier when entity, or any entity reached through a
// relationship, has no id.
func Serialize(entity Entity, registry TypeRegistry) (*Document, error) {
	idValue, ok := entity.Get(idField)
	if !ok || idValue.IsNull() {
		return nil, ErrMissingIdentifier
	}
	id, err := idValue.Text()
	if err != nil {
		return nil, fmt.Errorf("entity id: %w", err)
	}

	doc := &Document{Data: Resource{ID: id}}
	if root, ok := registry.Root(); ok {
		doc.Data.Type = root.Type
		doc.Links = &Links{Self: root.ResourceURL(id)}
	}

	var attributes []Field
	relationships := &Relationships{}

	for _, field := range entity.fields {
		if field.Key == idField {
			continue
		}

		switch field.Value.Kind() {
		case KindMapping:
			child, ok := registry.Derive(field.Key)
			if !ok {
				attributes = append(attributes, field)
				continue
			}
			nested, err := Serialize(field.Value.mapping, child)
			if err != nil {
				return nil, fmt.Errorf("relationship %q: %w", field.Key, err)
			}
			relationships.add(field.Key, Relationship{Single: nested})

		case KindSequence:
			child, ok := registry.Derive(field.Key)
			if !ok || len(field.Value.sequence) == 0 {
				attributes = append(attributes, field)
				continue
			}
			list, err := serializeList(field.Key, field.Value.sequence, child)
			if err != nil {
				return nil, err
			}
			relationships.add(field.Key, Relationship{List: list})

		case KindScalar:
			if isNumberOrBool(field.Value.scalar) {
				attributes = append(attributes, field)
			} else {
				attributes = append(attributes, Field{Key: field.Key, Value: Scalar(field.Value.String())})
			}

		default:
			attributes = append(attributes, field)
		}
	}

	if len(attributes) > 0 {
		attrs := Entity{fields: attributes}
		doc.Data.Attributes = &attrs
	}
	if relationships.Len() > 0 {
		doc.Data.Relationships = relationships
	}

	return doc, nil
}

func serializeList(key string, items []Entity, registry TypeRegistry) (*RelationshipList, error) {
	root, _ := registry.Root()
	list := &RelationshipList{
		Links: Links{Self: root.CollectionURL},
		Data:  make([]*Document, 0, len(items)),
	}
	for i, item := range items {
		nested, err := Serialize(item, registry)
		if err != nil {
			return nil, fmt.Errorf("relationship %q[%d]: %w", key, i, err)
		}
		list.Data = append(list.Data, nested)
	}
	return list, nil
}

// SerializeAll renders each entity with the same registry. It stops at the first
// entity that cannot be serialized.
func SerializeAll(entities []Entity, registry TypeRegistry) ([]*Document, error) {
	docs := make([]*Document, 0, len(entities))
	for i, e := range entities {
		doc, err := Serialize(e, registry)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
