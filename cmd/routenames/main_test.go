package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/clue/log"
	"gopkg.in/yaml.v3"

	"goa.design/routenames/codegen/routes"
)

const manifest = `
controllers:
  - route: ${base:/api}/users
    actions:
      - route: ${base:/api}/users/{id}
        verb: DELETE
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "api.yaml")
	propsPath := filepath.Join(dir, "props.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))
	require.NoError(t, os.WriteFile(propsPath, []byte("base: /v3\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, manifestPath, propsPath, routes.TargetJava))

	var res routes.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res.Controllers, 1)
	assert.Equal(t, "/v3/users", res.Controllers[0].Route)
	require.Len(t, res.Controllers[0].Actions, 1)
	assert.Equal(t, "deleteUserById", res.Controllers[0].Actions[0].Method)
}

func TestRunDebugLogsPropertyKeys(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "api.yaml")
	propsPath := filepath.Join(dir, "props.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))
	require.NoError(t, os.WriteFile(propsPath, []byte("base: /v3\nowner:\n  team: api\n"), 0o600))

	var logs bytes.Buffer
	ctx := log.Context(context.Background(), log.WithOutput(&logs), log.WithFormat(log.FormatJSON), log.WithDebug())
	var buf bytes.Buffer
	require.NoError(t, run(ctx, &buf, manifestPath, propsPath, routes.TargetJava))
	assert.Contains(t, logs.String(), `"base"`)
	assert.Contains(t, logs.String(), `"owner.team"`)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))

	var buf bytes.Buffer
	assert.Error(t, run(context.Background(), &buf, filepath.Join(dir, "missing.yaml"), "", routes.TargetJava))
	assert.Error(t, run(context.Background(), &buf, manifestPath, filepath.Join(dir, "missing.yaml"), routes.TargetJava))
	assert.Error(t, run(context.Background(), &buf, manifestPath, "", routes.Target("cobol")))
}
