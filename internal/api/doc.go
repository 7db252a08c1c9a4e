// Package api holds the HTTP handlers of the greeter service. Handlers validate
// input, call the service layer, render results as JSON:API documents and map
// every failure onto a JSON:API error document.
package api
