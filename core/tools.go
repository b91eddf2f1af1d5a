package session

import (
	"encoding/json"
	"fmt"

	"github.com/aria-voice/aria-client/core/events"
	"github.com/invopop/jsonschema"
)

// NewToolConfig builds a tool catalog entry from a Go parameter struct,
// reflecting its JSON schema the same way the backend publishes catalogs on
// init. Useful for assembling local catalogs in tests and fixtures.
func NewToolConfig(name, description string, parameters any) (events.ToolConfig, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(parameters)

	raw, err := json.Marshal(schema)
	if err != nil {
		return events.ToolConfig{}, fmt.Errorf("failed to encode schema for tool %q: %w", name, err)
	}

	return events.ToolConfig{
		Name:        name,
		Description: description,
		Schema:      raw,
	}, nil
}
