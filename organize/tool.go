package organize

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/fluxor-organize/internal/conv"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor-organize/organize/tool"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// DefaultToolTimeout bounds tool executions started by MCP clients.
const DefaultToolTimeout = 15 * time.Minute

// Tools returns a tool entry for every action method.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	actions := s.Workflow.Service.Actions()
	for _, name := range actions.Services() {
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		for _, method := range service.Methods() {
			toolName := tool.NewName(name, method.Name)
			aTool, err := s.LookupTool(toolName.String())
			if err != nil {
				s.logger.Warn().Err(err).Str("tool", toolName.String()).Msg("tool skipped")
				continue
			}
			result = append(result, aTool)
		}
	}
	return result
}

// MatchTools returns tools whose name (organize_name-match) or path
// (organize/name/match) matches expr.
func (s *Service) MatchTools(expr string) (serverproto.Tools, error) {
	p, err := pattern.Compile(expr, true)
	if err != nil {
		return nil, err
	}
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		name := tool.Name(entry.Metadata.Name)
		if p.Test(name.String()) || p.Test(name.Path()) {
			result = append(result, entry)
		}
	}
	return result, nil
}

// LookupTool builds the tool entry for a service-method tool name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	toolName := tool.Canonical(name)
	service := s.Workflow.Service.Actions().Lookup(toolName.Service())
	if service == nil {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	for _, method := range service.Methods() {
		if method.Name != toolName.Method() {
			continue
		}
		sig := &types.Signature{
			Name:        toolName.String(),
			Description: method.Description,
			Input:       method.Input,
			Output:      method.Output,
		}
		toolEntry := serverproto.ToolEntry{}
		var err error
		if toolEntry.Metadata, err = tool.BuildSchema(sig); err != nil {
			return nil, err
		}
		toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments, DefaultToolTimeout)
			res := &mcpschema.CallToolResult{}
			if err != nil {
				res.IsError = conv.Pointer[bool](true)
				res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
					Type: "text",
					Text: err.Error(),
				})
				return res, nil
			}
			var data []byte
			switch actual := output.(type) {
			case string:
				data = []byte(actual)
			case []byte:
				data = actual
			default:
				data, _ = json.Marshal(output)
			}
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: string(data),
			})
			return res, nil
		}
		return &toolEntry, nil
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

// ExecuteTool schedules the action behind a tool name and waits for its
// output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Canonical(name)

	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return "", err
	}

	waitFn, err := s.Workflow.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return "", err
	}

	anExec, err := waitFn(timeout)
	if err != nil {
		return "", err
	}

	if anExec.Error != "" {
		var errorMap = map[string]interface{}{"error": anExec.Error}
		errorResponse, _ := json.Marshal(errorMap)
		return string(errorResponse), nil
	}
	return anExec.Output, nil
}
