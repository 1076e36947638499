package tool

import "strings"

// Name is an MCP tool name in service_path-method form, e.g.
// "organize_name-match" for method match of service organize/name.
type Name string

// Service returns the fluxor service name.
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

// Method returns the action method, empty when the name has no method part.
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

// Path returns the slash form used by CLI patterns: organize/name/match.
func (t Name) Path() string {
	if method := t.Method(); method != "" {
		return t.Service() + "/" + method
	}
	return t.Service()
}

func (t Name) String() string {
	return string(t)
}

// NewName builds a tool name from a service and a method.
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical accepts service/method, service.method or tool form and returns
// the tool form.
func Canonical(name string) Name {
	if strings.Contains(name, "-") {
		idx := strings.LastIndex(name, "-")
		return NewName(name[:idx], name[idx+1:])
	}
	if idx := strings.LastIndexAny(name, "./"); idx != -1 {
		return NewName(name[:idx], name[idx+1:])
	}
	return Name(name)
}
