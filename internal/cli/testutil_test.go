package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleFlow is a three-step flow with a numeric gate on the last hop.
const sampleFlow = `{
  "nodes": [
    {"id": "start", "data": {"label": "Start"}},
    {"id": "review", "data": {"label": "Review"}},
    {"id": "approve", "data": {"label": "Approve"}}
  ],
  "edges": [
    {"id": "e1", "source": "start", "target": "review"},
    {
      "id": "e2", "source": "review", "target": "approve",
      "rules": [{"id": "r1", "condition": "score", "operator": "greater_than", "value": 80}]
    }
  ]
}`

// invalidFlow references a node that does not exist.
const invalidFlow = `{
  "nodes": [{"id": "start", "data": {"label": "Start"}}],
  "edges": [{"id": "e1", "source": "start", "target": "ghost"}]
}`

// writeFlow writes content to a temp file and returns its path.
func writeFlow(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
