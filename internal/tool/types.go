package tool

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// ScalarField is the key a scalar parameter is stored under once validated, and the
// property name used when a scalar schema has to be presented as an object.
const ScalarField = "input"

// Schema describes a tool's parameters. A schema is either a single scalar with
// constraints or an object whose Properties each carry their own constraints.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	MinLength   *int               `json:"minLength,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Default     any                `json:"default,omitempty"`
}

// IsScalar reports whether the schema describes a single value rather than an object.
func (s *Schema) IsScalar() bool {
	return s != nil && s.Type != TypeObject
}

// Declaration declares a tool's function signature for the LLM.
type Declaration struct {
	Name        string  `json:"name"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Ptr returns a pointer to v. Used for optional schema constraints.
func Ptr[T any](v T) *T {
	return &v
}

// Result is the outcome of one tool invocation: either a successful payload or a
// failure reason. There are no partial results.
type Result struct {
	content string
	failed  bool
}

// Success wraps a tool payload.
func Success(payload string) Result {
	return Result{content: payload}
}

// Failure wraps the reason a tool could not complete.
func Failure(reason string) Result {
	return Result{content: reason, failed: true}
}

// Failed reports whether the invocation failed.
func (r Result) Failed() bool {
	return r.failed
}

// Payload returns the success payload, or "" for a failure.
func (r Result) Payload() string {
	if r.failed {
		return ""
	}
	return r.content
}

// Reason returns the failure reason, or "" for a success.
func (r Result) Reason() string {
	if !r.failed {
		return ""
	}
	return r.content
}

// String returns the text relayed to the model: the payload, or the reason prefixed
// with "Error: ".
func (r Result) String() string {
	if r.failed {
		return "Error: " + r.content
	}
	return r.content
}
