package jsonapi

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) Value { return Scalar(s) }

func TestSerialize_NoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity Entity
	}{
		{name: "empty entity", entity: NewEntity()},
		{name: "null id", entity: NewEntity(Field{Key: "id", Value: Null()})},
		{name: "other fields only", entity: NewEntity(Field{Key: "name", Value: str("bob")})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Serialize(tc.entity, TypeRegistry{})
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrMissingIdentifier)
		})
	}
}

func TestSerialize_OnlyID(t *testing.T) {
	t.Parallel()

	doc, err := Serialize(NewEntity(Field{Key: "id", Value: str("a")}), NewTypeRegistry(nil))
	require.NoError(t, err)

	assert.Equal(t, "a", doc.Data.ID)
	assert.Empty(t, doc.Data.Type)
	assert.Nil(t, doc.Links)
	assert.Nil(t, doc.Data.Attributes)
	assert.Nil(t, doc.Data.Relationships)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"a"}}`, string(b))
}

func TestSerialize_IDIsStringified(t *testing.T) {
	t.Parallel()

	doc, err := Serialize(NewEntity(Field{Key: "id", Value: Scalar(123)}), TypeRegistry{})
	require.NoError(t, err)
	assert.Equal(t, "123", doc.Data.ID)
}

func TestSerialize_RootDataType(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "tests", CollectionURL: "/tests"},
	})

	doc, err := Serialize(NewEntity(Field{Key: "id", Value: str("a")}), registry)
	require.NoError(t, err)

	require.NotNil(t, doc.Links)
	assert.Equal(t, "/tests/a", doc.Links.Self)
	assert.Equal(t, "tests", doc.Data.Type)
}

func TestSerialize_PrimitiveAttributes(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "tests", CollectionURL: "/tests"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "name", Value: str("bob")},
		Field{Key: "age", Value: Scalar(20)},
		Field{Key: "score", Value: Scalar(1.5)},
		Field{Key: "active", Value: Scalar(true)},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)
	require.NotNil(t, doc.Data.Attributes)

	attrs := doc.Data.Attributes
	assert.Equal(t, []string{"name", "age", "score", "active"}, attrs.Keys())

	name, _ := attrs.Get("name")
	assert.Equal(t, "bob", name.Scalar())
	age, _ := attrs.Get("age")
	assert.Equal(t, 20, age.Scalar())
	active, _ := attrs.Get("active")
	assert.Equal(t, true, active.Scalar())
	assert.Nil(t, doc.Data.Relationships)
}

type stringerID struct{ v string }

func (s stringerID) String() string { return "sid-" + s.v }

func TestSerialize_OtherScalarsBecomeStrings(t *testing.T) {
	t.Parallel()

	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "ref", Value: Scalar(stringerID{v: "x"})},
		Field{Key: "missing", Value: Null()},
	)

	doc, err := Serialize(entity, TypeRegistry{})
	require.NoError(t, err)

	ref, ok := doc.Data.Attributes.Get("ref")
	require.True(t, ok)
	assert.Equal(t, "sid-x", ref.Scalar())

	missing, ok := doc.Data.Attributes.Get("missing")
	require.True(t, ok)
	assert.True(t, missing.IsNull())
}

func TestSerialize_ListAttributeNoDataType(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey:  {Type: "tests", CollectionURL: "/tests"},
		"nested": {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "list", Value: Sequence(
			NewEntity(
				Field{Key: "id", Value: str("b")},
				Field{Key: "nested", Value: Mapping(NewEntity(Field{Key: "id", Value: str("c")}))},
			),
		)},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Nil(t, doc.Data.Relationships)
	require.Equal(t, 1, doc.Data.Attributes.Len())

	list, ok := doc.Data.Attributes.Get("list")
	require.True(t, ok)
	assert.Equal(t, KindSequence, list.Kind())

	b, err := json.Marshal(doc.Data.Attributes)
	require.NoError(t, err)
	assert.Equal(t, `{"list":[{"id":"b","nested":{"id":"c"}}]}`, string(b))
}

func TestSerialize_EmptyListIsAttribute(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		"list": {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "list", Value: Sequence()},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Nil(t, doc.Data.Relationships)
	b, err := json.Marshal(doc.Data.Attributes)
	require.NoError(t, err)
	assert.Equal(t, `{"list":[]}`, string(b))
}

func TestSerialize_ListAttributesProcessedRecursively(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "tests", CollectionURL: "/tests"},
		"list":  {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "list", Value: Sequence(
			NewEntity(
				Field{Key: "id", Value: str("b")},
				Field{Key: "name", Value: str("alice")},
			),
		)},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Nil(t, doc.Data.Attributes)
	require.Equal(t, 1, doc.Data.Relationships.Len())

	rel, ok := doc.Data.Relationships.Get("list")
	require.True(t, ok)
	require.NotNil(t, rel.List)
	assert.Nil(t, rel.Single)
	assert.Equal(t, "/nested", rel.List.Links.Self)
	require.Len(t, rel.List.Data, 1)

	item := rel.List.Data[0]
	require.NotNil(t, item.Links)
	assert.Equal(t, "/nested/b", item.Links.Self)
	assert.Equal(t, "b", item.Data.ID)
	assert.Equal(t, "nested", item.Data.Type)
	require.Equal(t, 1, item.Data.Attributes.Len())
	name, _ := item.Data.Attributes.Get("name")
	assert.Equal(t, "alice", name.Scalar())
}

func TestSerialize_DictAttributeNoDataType(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey:  {Type: "tests", CollectionURL: "/tests"},
		"nested": {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "dict", Value: Mapping(NewEntity(
			Field{Key: "id", Value: str("b")},
			Field{Key: "nested", Value: Mapping(NewEntity(Field{Key: "id", Value: str("c")}))},
		))},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Nil(t, doc.Data.Relationships)
	dict, ok := doc.Data.Attributes.Get("dict")
	require.True(t, ok)
	_, hasData := dict.Mapping().Get("data")
	assert.False(t, hasData)
	nested, ok := dict.Mapping().Get("nested")
	require.True(t, ok)
	assert.Equal(t, `{"id":"c"}`, nested.String())
}

func TestSerialize_DictAttributesProcessedRecursively(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "tests", CollectionURL: "/tests"},
		"dict":  {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "dict", Value: Mapping(NewEntity(
			Field{Key: "id", Value: str("b")},
			Field{Key: "name", Value: str("alice")},
		))},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Nil(t, doc.Data.Attributes)
	rel, ok := doc.Data.Relationships.Get("dict")
	require.True(t, ok)
	require.NotNil(t, rel.Single)

	assert.Equal(t, "/nested/b", rel.Single.Links.Self)
	assert.Equal(t, "b", rel.Single.Data.ID)
	assert.Equal(t, "nested", rel.Single.Data.Type)
	name, _ := rel.Single.Data.Attributes.Get("name")
	assert.Equal(t, "alice", name.Scalar())
}

func TestSerialize_SiblingRelationshipsAreIndependent(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "people", CollectionURL: "example.com/people"},
		"town":  {Type: "towns", CollectionURL: "example.com/towns"},
		"pets":  {Type: "pets", CollectionURL: "example.com/pets"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: Scalar(123)},
		Field{Key: "name", Value: str("Alice")},
		Field{Key: "town", Value: Mapping(NewEntity(
			Field{Key: "id", Value: Scalar(456)},
			Field{Key: "name", Value: str("Funville")},
		))},
		Field{Key: "pets", Value: Sequence(
			NewEntity(Field{Key: "id", Value: Scalar(678)}, Field{Key: "species", Value: str("dog")}),
			NewEntity(Field{Key: "id", Value: Scalar(789)}, Field{Key: "species", Value: str("cat")}),
		)},
		Field{Key: "home", Value: Mapping(NewEntity(
			Field{Key: "id", Value: Scalar(1)},
			Field{Key: "town", Value: Mapping(NewEntity(Field{Key: "id", Value: Scalar(2)}))},
		))},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	assert.Equal(t, "example.com/people/123", doc.Links.Self)
	assert.Equal(t, "people", doc.Data.Type)
	assert.Equal(t, []string{"town", "pets"}, doc.Data.Relationships.Keys())

	town, _ := doc.Data.Relationships.Get("town")
	assert.Equal(t, "towns", town.Single.Data.Type)
	assert.Equal(t, "example.com/towns/456", town.Single.Links.Self)

	pets, _ := doc.Data.Relationships.Get("pets")
	assert.Equal(t, "example.com/pets", pets.List.Links.Self)
	require.Len(t, pets.List.Data, 2)
	for i, id := range []string{"678", "789"} {
		assert.Equal(t, "pets", pets.List.Data[i].Data.Type)
		assert.Equal(t, "example.com/pets/"+id, pets.List.Data[i].Links.Self)
	}

	// The caller's registry still has its original root.
	root, ok := registry.Root()
	require.True(t, ok)
	assert.Equal(t, "people", root.Type)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"links": {"self": "example.com/people/123"},
		"data": {
			"id": "123",
			"type": "people",
			"attributes": {
				"name": "Alice",
				"home": {"id": 1, "town": {"id": 2}}
			},
			"relationships": {
				"town": {
					"links": {"self": "example.com/towns/456"},
					"data": {"id": "456", "type": "towns", "attributes": {"name": "Funville"}}
				},
				"pets": {
					"links": {"self": "example.com/pets"},
					"data": [
						{"links": {"self": "example.com/pets/678"},
						 "data": {"id": "678", "type": "pets", "attributes": {"species": "dog"}}},
						{"links": {"self": "example.com/pets/789"},
						 "data": {"id": "789", "type": "pets", "attributes": {"species": "cat"}}}
					]
				}
			}
		}
	}`, string(b))
}

func TestSerialize_NestedRelationshipUsesParentEntries(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "people", CollectionURL: "/people"},
		"town":  {Type: "towns", CollectionURL: "/towns"},
		"mayor": {Type: "people", CollectionURL: "/people"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("p1")},
		Field{Key: "town", Value: Mapping(NewEntity(
			Field{Key: "id", Value: str("t1")},
			Field{Key: "mayor", Value: Mapping(NewEntity(Field{Key: "id", Value: str("p2")}))},
		))},
	)

	doc, err := Serialize(entity, registry)
	require.NoError(t, err)

	town, _ := doc.Data.Relationships.Get("town")
	mayor, ok := town.Single.Data.Relationships.Get("mayor")
	require.True(t, ok)
	assert.Equal(t, "/people/p2", mayor.Single.Links.Self)
}

func TestSerialize_MissingIDInRelationship(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		"list": {Type: "nested", CollectionURL: "/nested"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "list", Value: Sequence(NewEntity(Field{Key: "name", Value: str("x")}))},
	)

	_, err := Serialize(entity, registry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingIdentifier))
	assert.Contains(t, err.Error(), `relationship "list"[0]`)
}

func TestSerialize_ConcurrentCallsShareRegistry(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "tests", CollectionURL: "/tests"},
		"child": {Type: "children", CollectionURL: "/children"},
	})
	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "child", Value: Mapping(NewEntity(Field{Key: "id", Value: str("b")}))},
	)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := Serialize(entity, registry)
			if assert.NoError(t, err) {
				assert.Equal(t, "/tests/a", doc.Links.Self)
			}
		}()
	}
	wg.Wait()
}

func TestSerializeAll(t *testing.T) {
	t.Parallel()

	registry := NewTypeRegistry(map[string]ResourceDescriptor{
		RootKey: {Type: "greetings", CollectionURL: "/greetings"},
	})

	docs, err := SerializeAll([]Entity{
		NewEntity(Field{Key: "id", Value: str("1")}),
		NewEntity(Field{Key: "id", Value: str("2")}),
	}, registry)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "/greetings/2", docs[1].Links.Self)

	_, err = SerializeAll([]Entity{NewEntity()}, registry)
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestSerialize_NullAttributeEncodesAsNull(t *testing.T) {
	t.Parallel()

	entity := NewEntity(
		Field{Key: "id", Value: str("a")},
		Field{Key: "nickname", Value: Null()},
		Field{Key: "name", Value: str("bob")},
	)

	doc, err := Serialize(entity, TypeRegistry{})
	require.NoError(t, err)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"id":"a","attributes":{"nickname":null,"name":"bob"}}}`, string(b))
}

func TestSerialize_UnrenderableMappingID(t *testing.T) {
	t.Parallel()

	entity := NewEntity(
		Field{Key: "id", Value: Mapping(NewEntity(Field{Key: "n", Value: Scalar(math.NaN())}))},
	)

	doc, err := Serialize(entity, TypeRegistry{})
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingIdentifier)
	assert.Contains(t, err.Error(), "entity id")
}

func TestSerialize_MappingIDRendersAsJSON(t *testing.T) {
	t.Parallel()

	entity := NewEntity(
		Field{Key: "id", Value: Mapping(NewEntity(Field{Key: "k", Value: str("a&b")}))},
	)

	doc, err := Serialize(entity, TypeRegistry{})
	require.NoError(t, err)
	assert.Equal(t, `{"k":"a&b"}`, doc.Data.ID)
}
