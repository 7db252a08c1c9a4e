package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/phrazzld/greeter-api/internal/jsonapi"
)

// Column widths of the greetings table.
const (
	MaxGreetingNameLength    = 50
	MaxGreetingMessageLength = 50
)

// GreetingResourceType is the JSON:API type of a greeting.
const GreetingResourceType = "greetings"

// Greeting is a stored salutation for a named recipient.
type Greeting struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GreetingMessage returns the salutation for name.
func GreetingMessage(name string) string {
	return "Hello " + name + "!"
}

// NewGreeting creates a validated Greeting for name with a fresh ID and UTC
// timestamps. Surrounding whitespace in name is dropped.
func NewGreeting(name string) (*Greeting, error) {
	name = strings.TrimSpace(name)
	now := time.Now().UTC()
	g := &Greeting{
		ID:        uuid.New(),
		Name:      name,
		Message:   GreetingMessage(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the greeting against the storage constraints.
func (g *Greeting) Validate() error {
	if g.ID == uuid.Nil {
		return ErrEmptyGreetingID
	}
	if g.Name == "" {
		return ErrEmptyGreetingName
	}
	if utf8.RuneCountInString(g.Name) > MaxGreetingNameLength {
		return ErrGreetingNameTooLong
	}
	if utf8.RuneCountInString(g.Message) > MaxGreetingMessageLength {
		return ErrGreetingMessageTooLong
	}
	return nil
}

// Entity builds the serializer input for the greeting. Timestamps are rendered
// as RFC 3339 strings.
func (g *Greeting) Entity() jsonapi.Entity {
	return jsonapi.NewEntity(
		jsonapi.Field{Key: "id", Value: jsonapi.Scalar(g.ID.String())},
		jsonapi.Field{Key: "created_at", Value: jsonapi.Scalar(g.CreatedAt.UTC().Format(time.RFC3339))},
		jsonapi.Field{Key: "updated_at", Value: jsonapi.Scalar(g.UpdatedAt.UTC().Format(time.RFC3339))},
		jsonapi.Field{Key: "name", Value: jsonapi.Scalar(g.Name)},
		jsonapi.Field{Key: "message", Value: jsonapi.Scalar(g.Message)},
	)
}

// GreetingEntities maps greetings onto serializer input, preserving order.
func GreetingEntities(greetings []*Greeting) []jsonapi.Entity {
	entities := make([]jsonapi.Entity, 0, len(greetings))
	for _, g := range greetings {
		entities = append(entities, g.Entity())
	}
	return entities
}
