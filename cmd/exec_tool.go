package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/viant/afs"
)

// ExecCmd executes a registered tool from the CLI. Arguments are supplied
// inline via -i/--input or loaded from a local path or afs URL via --file
// ("-" reads stdin).
type ExecCmd struct {
	Name       string `short:"n" long:"name" description:"tool name (service/method)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"inline JSON arguments (object)"`
	File       string `long:"file" description:"JSON arguments file path or URL (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"seconds to wait for completion" default:"120"`
	JSON       bool   `long:"json" description:"print result as JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}
	ctx := context.Background()
	args, err := c.arguments(ctx)
	if err != nil {
		return err
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	defer svc.Shutdown(ctx)

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	out, err := svc.ExecuteTool(ctx, c.Name, args, timeout)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(out, true)
	}
	switch v := out.(type) {
	case string:
		fmt.Fprintln(stdout, v)
	case []byte:
		fmt.Fprintln(stdout, string(v))
	default:
		return printJSON(v, true)
	}
	return nil
}

func (c *ExecCmd) arguments(ctx context.Context) (map[string]interface{}, error) {
	var data []byte
	var err error
	switch {
	case c.Inline != "":
		data = []byte(c.Inline)
	case c.File == "-":
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	case c.File != "":
		if data, err = afs.New().DownloadWithURL(ctx, c.File); err != nil {
			return nil, fmt.Errorf("download %v: %w", c.File, err)
		}
	default:
		return nil, nil
	}
	var args map[string]interface{}
	if err = json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("invalid JSON arguments: %w", err)
	}
	return args, nil
}
