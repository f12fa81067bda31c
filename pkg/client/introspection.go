package client

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes internal state for observability.
type ClientState struct {
	BackendType string `json:"backend_type"`
	Calendar    string `json:"calendar"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	backendType := "unknown"
	if c.backend != nil {
		backendType = "backend"
		if comp, ok := c.backend.(introspection.Component); ok {
			backendType = comp.ComponentType()
		}
	}

	return ClientState{
		BackendType: backendType,
		Calendar:    c.calendar.Name(),
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "client"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
