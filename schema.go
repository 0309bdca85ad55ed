package toolloop

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ParameterSchema reflects T into a parameter-name -> schema-descriptor map
// suitable for WithParameters. T is typically a struct with json and
// jsonschema tags describing the tool's arguments.
func ParameterSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	if props, ok := m["properties"].(map[string]any); ok {
		return props
	}
	return map[string]any{}
}
