package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"organize configuration YAML/JSON path or URL"`
	LogLevel string `long:"log-level" description:"log level (debug, info, warn, error)" default:"warn"`
	Pretty   bool   `long:"pretty" description:"human readable logs"`

	Match       *MatchCmd       `command:"match"        description:"Test names against a name pattern"`
	Compile     *CompileCmd     `command:"compile"      description:"Validate a name pattern and list its captures"`
	Scan        *ScanCmd        `command:"scan"         description:"Run configured rules and print matching entries"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List fluxor services and their actions"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute a tool"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the registered tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "match":
		o.Match = &MatchCmd{}
	case "compile":
		o.Compile = &CompileCmd{}
	case "scan":
		o.Scan = &ScanCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
