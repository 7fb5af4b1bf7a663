package llm

// SchemaType is the JSON type of a schema node.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeString  SchemaType = "string"
	TypeArray   SchemaType = "array"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a backend-neutral description of the JSON a task expects.
// Each client translates it into its own structured-output format.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	// Ordering fixes property order in the generated output.
	Ordering []string
}

// Field is one named property of an object schema.
type Field struct {
	Name   string
	Schema *Schema
}

// Object builds an object schema. Properties keep the order given; every
// property is required unless listed in optional.
func Object(fields []Field, optional ...string) *Schema {
	skip := make(map[string]bool, len(optional))
	for _, name := range optional {
		skip[name] = true
	}
	s := &Schema{Type: TypeObject, Properties: make(map[string]*Schema, len(fields))}
	for _, f := range fields {
		s.Properties[f.Name] = f.Schema
		s.Ordering = append(s.Ordering, f.Name)
		if !skip[f.Name] {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}

func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

func StringArray(description string) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: &Schema{Type: TypeString}}
}

// JSONSchema renders s as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	return out
}
