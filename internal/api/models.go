package api

import (
	"github.com/phrazzld/greeter-api/internal/jsonapi"
	"github.com/phrazzld/greeter-api/internal/pagination"
)

// CreateGreetingRequest is the body of POST /hello_world/greetings.
type CreateGreetingRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ListResponse is one page of a collection.
type ListResponse struct {
	Links pagination.Links    `json:"links"`
	Data  []*jsonapi.Document `json:"data"`
}

// MessageResponse is the body of the hello world endpoint.
type MessageResponse struct {
	Data MessageData `json:"data"`
}

// MessageData holds a single message.
type MessageData struct {
	Message string `json:"message"`
}
