package gemini

import (
	"context"
	"testing"

	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockInvoker struct {
	name   string
	raw    any
	result tool.Result
}

func (m *mockInvoker) Invoke(ctx context.Context, name string, raw any) tool.Result {
	m.name = name
	m.raw = raw
	return m.result
}

func TestFunctionDeclarations_ObjectSchema(t *testing.T) {
	decls := []tool.Declaration{{
		Name:        "grep",
		Description: "search",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"pattern": {Type: tool.TypeString, MinLength: tool.Ptr(1)},
				"depth":   {Type: tool.TypeInteger, Minimum: tool.Ptr(0.0), Default: 0},
				"mode":    {Type: tool.TypeString, Enum: []string{"a", "b"}},
				"tags":    {Type: tool.TypeArray, Items: &tool.Schema{Type: tool.TypeString}},
			},
			Required: []string{"pattern"},
		},
	}}

	got := FunctionDeclarations(decls)

	require.Len(t, got, 1)
	fd := got[0]
	assert.Equal(t, "grep", fd.Name)
	assert.Equal(t, "search", fd.Description)
	require.NotNil(t, fd.Parameters)
	assert.Equal(t, genai.TypeObject, fd.Parameters.Type)
	assert.Equal(t, []string{"pattern"}, fd.Parameters.Required)

	props := fd.Parameters.Properties
	require.Len(t, props, 4)
	assert.Equal(t, genai.TypeString, props["pattern"].Type)
	assert.Equal(t, int64(1), *props["pattern"].MinLength)
	assert.Equal(t, genai.TypeInteger, props["depth"].Type)
	assert.Equal(t, 0.0, *props["depth"].Minimum)
	assert.Equal(t, 0, props["depth"].Default)
	assert.Equal(t, []string{"a", "b"}, props["mode"].Enum)
	assert.Equal(t, genai.TypeArray, props["tags"].Type)
	require.NotNil(t, props["tags"].Items)
	assert.Equal(t, genai.TypeString, props["tags"].Items.Type)
}

func TestFunctionDeclarations_ScalarSchemaIsWrapped(t *testing.T) {
	decls := []tool.Declaration{{
		Name:       "read_file",
		Parameters: &tool.Schema{Type: tool.TypeString, Description: "path", MinLength: tool.Ptr(1)},
	}}

	fd := FunctionDeclarations(decls)[0]

	require.NotNil(t, fd.Parameters)
	assert.Equal(t, genai.TypeObject, fd.Parameters.Type)
	assert.Equal(t, []string{tool.ScalarField}, fd.Parameters.Required)
	inner := fd.Parameters.Properties[tool.ScalarField]
	require.NotNil(t, inner)
	assert.Equal(t, genai.TypeString, inner.Type)
	assert.Equal(t, "path", inner.Description)
}

func TestFunctionDeclarations_NoParameters(t *testing.T) {
	fd := FunctionDeclarations([]tool.Declaration{{Name: "noop"}})[0]
	assert.Nil(t, fd.Parameters)
}

func TestTools(t *testing.T) {
	assert.Nil(t, Tools(nil))

	tools := Tools([]tool.Declaration{{Name: "a"}, {Name: "b"}})
	require.Len(t, tools, 1)
	assert.Len(t, tools[0].FunctionDeclarations, 2)
}

func TestCall(t *testing.T) {
	t.Run("success becomes output", func(t *testing.T) {
		inv := &mockInvoker{result: tool.Success("hello")}
		call := &genai.FunctionCall{ID: "c1", Name: "read_file", Args: map[string]any{"input": "a.txt"}}

		resp := Call(context.Background(), inv, call)

		assert.Equal(t, "read_file", inv.name)
		assert.Equal(t, map[string]any{"input": "a.txt"}, inv.raw)
		assert.Equal(t, "c1", resp.ID)
		assert.Equal(t, "read_file", resp.Name)
		assert.Equal(t, map[string]any{"output": "hello"}, resp.Response)
	})

	t.Run("failure becomes error", func(t *testing.T) {
		inv := &mockInvoker{result: tool.Failure("boom")}

		resp := Call(context.Background(), inv, &genai.FunctionCall{Name: "grep"})

		assert.Nil(t, inv.raw)
		assert.Equal(t, map[string]any{"error": "boom"}, resp.Response)
	})
}
