package ai

import "sort"

// Schema describes the structure of the JSON object the model must return.
type Schema struct {
	Type       string               `json:"type"`
	Properties map[string]*Property `json:"properties"`
	Required   []string             `json:"required,omitempty"`
}

// Property of a schema.
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// Object is a shorthand constructor for an object schema requiring all of its
// properties.
func Object(properties map[string]*Property) *Schema {
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}
	sort.Strings(required)

	return &Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
