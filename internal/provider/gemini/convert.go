// Package gemini bridges the tool contract to Gemini function calling: tool
// declarations become genai function declarations, and function calls coming back
// from the model are dispatched to the tool manager.
package gemini

import (
	"context"

	"github.com/Cyclone1070/toolbelt/internal/tool"
	"google.golang.org/genai"
)

// invoker dispatches one validated tool invocation.
type invoker interface {
	Invoke(ctx context.Context, name string, raw any) tool.Result
}

// Tools wraps the declarations into the single genai.Tool a request carries.
func Tools(decls []tool.Declaration) []*genai.Tool {
	if len(decls) == 0 {
		return nil
	}
	return []*genai.Tool{{FunctionDeclarations: FunctionDeclarations(decls)}}
}

// FunctionDeclarations converts tool declarations. Gemini parameters must be an
// object, so a scalar schema is presented as an object with a single required
// "input" property.
func FunctionDeclarations(decls []tool.Declaration) []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, d := range decls {
		fd := &genai.FunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
		}
		switch {
		case d.Parameters == nil:
		case d.Parameters.IsScalar():
			fd.Parameters = &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{tool.ScalarField: toGeminiSchema(d.Parameters)},
				Required:   []string{tool.ScalarField},
			}
		default:
			fd.Parameters = toGeminiSchema(d.Parameters)
		}
		out = append(out, fd)
	}
	return out
}

// Call runs a model-issued function call and packs the result the way Gemini expects
// it back: an "output" key on success, an "error" key on failure.
func Call(ctx context.Context, inv invoker, call *genai.FunctionCall) *genai.FunctionResponse {
	var args any
	if call.Args != nil {
		args = call.Args
	}
	res := inv.Invoke(ctx, call.Name, args)

	resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
	if res.Failed() {
		resp.Response = map[string]any{"error": res.Reason()}
	} else {
		resp.Response = map[string]any{"output": res.Payload()}
	}
	return resp
}

func toGeminiSchema(s *tool.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:        toGeminiType(s.Type),
		Description: s.Description,
		Default:     s.Default,
	}
	if len(s.Enum) > 0 {
		out.Enum = s.Enum
	}
	if s.MinLength != nil {
		n := int64(*s.MinLength)
		out.MinLength = &n
	}
	if s.Minimum != nil {
		m := *s.Minimum
		out.Minimum = &m
	}
	if s.Items != nil {
		out.Items = toGeminiSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	if len(s.Required) > 0 {
		out.Required = s.Required
	}
	return out
}

func toGeminiType(t tool.Type) genai.Type {
	switch t {
	case tool.TypeString:
		return genai.TypeString
	case tool.TypeNumber:
		return genai.TypeNumber
	case tool.TypeInteger:
		return genai.TypeInteger
	case tool.TypeBoolean:
		return genai.TypeBoolean
	case tool.TypeArray:
		return genai.TypeArray
	case tool.TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}
