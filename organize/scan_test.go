package organize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/fluxor-organize/organize/config"
	"github.com/viant/fluxor-organize/organize/filter"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor-organize/organize/rule"
)

const scanConfig = `
builtins: [nop]
rules:
  - name: invoices
    locations: mem://localhost/scan/inbox
    filters:
      - name:
          match: "invoice_{vendor}_{number}"
          case_sensitive: false
  - name: drafts
    locations: mem://localhost/scan/inbox
    filters:
      - name:
          match: "*"
          endswith: [_draft, _wip]
`

func TestService_Scan(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	for _, name := range []string{"Invoice_ACME_001.pdf", "invoice_globex_17.pdf", "notes_draft.md", "photo.jpg"} {
		require.NoError(t, fs.Upload(ctx, "mem://localhost/scan/inbox/"+name, 0644, strings.NewReader("x")))
	}
	defer func() { _ = fs.Delete(ctx, "mem://localhost/scan") }()

	cfg, err := config.Parse([]byte(scanConfig))
	require.NoError(t, err)
	svc, err := New(ctx, WithConfig(cfg), WithFS(fs))
	require.NoError(t, err)
	require.Len(t, svc.Rules(), 2)

	actual := map[string]interface{}{}
	collect := func(match *rule.Match) error {
		actual[match.Rule+":"+filter.BaseName(match.URL)] = match.Context["name"]
		return nil
	}

	require.NoError(t, svc.Scan(ctx, collect, "invoices"))
	assert.EqualValues(t, map[string]interface{}{
		"invoices:Invoice_ACME_001.pdf":  pattern.NewCaptures("vendor", "ACME", "number", "001"),
		"invoices:invoice_globex_17.pdf": pattern.NewCaptures("vendor", "globex", "number", "17"),
	}, actual)

	actual = map[string]interface{}{}
	require.NoError(t, svc.Scan(ctx, collect))
	assert.Len(t, actual, 3)
	assert.EqualValues(t, "notes_draft", actual["drafts:notes_draft.md"])

	assert.Error(t, svc.Scan(ctx, collect, "missing"))
}

func TestNew_InvalidRule(t *testing.T) {
	cfg, err := config.Parse([]byte("rules:\n  - locations: /tmp\n    filters:\n      - name: '{year'"))
	require.NoError(t, err)
	_, err = New(context.Background(), WithConfig(cfg))
	assert.Error(t, err)
}
