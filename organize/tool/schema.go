package tool

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
)

// BuildSchema derives MCP tool metadata from an action signature.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	if sig.Input != nil {
		if err := inputSchema.Load(sample(sig.Input)); err != nil {
			return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
		}
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	desc := sig.Description
	tool := schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema}
	if sig.Output != nil {
		output := sig.Output
		if output.Kind() == reflect.Pointer {
			output = output.Elem()
		}
		if output.Kind() == reflect.Struct {
			props, required := schema.StructToProperties(output)
			tool.OutputSchema = &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
		}
	}
	return tool, nil
}

func sample(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}
