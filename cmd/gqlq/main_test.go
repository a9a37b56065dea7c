package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `fields:
  user:
    fname: str
    age: int
args:
  user_id: "${GQLQ_USER}"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, ".env", "GQLQ_USER=77\n")
	doc := writeFile(t, dir, "doc.yaml", document)
	t.Cleanup(func() { os.Unsetenv("GQLQ_USER") })

	out, err := execute(t, "build", "--env-file", env, "-d", doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n  user(user_id: \"77\") {\n    fname\n    age\n    }\n}\n", out)
}

func TestBuildCommand_Conventional(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.yaml", "fields:\n  user:\n    fname: str\n")

	out, err := execute(t, "build", "--env-file", "", "--conventional", "-d", doc)
	require.NoError(t, err)
	assert.Equal(t, "{\n  user {\n    fname\n  }\n}\n", out)
}

func TestBuildCommand_RequiresDocument(t *testing.T) {
	_, err := execute(t, "build", "--env-file", "")
	assert.EqualError(t, err, "--document is required")
}

func TestQueryCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data": {"user": {"fname": "Ann", "age": 30}}}`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := writeFile(t, dir, "gqlq.yaml", fmt.Sprintf("host: %s\nforce_typing: true\n", srv.URL))
	doc := writeFile(t, dir, "doc.yaml", "fields:\n  user:\n    fname: str\n    age: int\n")

	out, err := execute(t, "query", "--env-file", "", "-c", cfg, "-d", doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user": {"fname": "Ann", "age": 30}}`, out)

	out, err = execute(t, "query", "--env-file", "", "-c", cfg, "-t", "{ user { fname } }", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "{\"data\": {\"user\": {\"fname\": \"Ann\", \"age\": 30}}}\n", out)
}

func TestQueryCommand_NoRaise(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	dir := t.TempDir()
	cfg := writeFile(t, dir, "gqlq.yaml", fmt.Sprintf("host: %s\n", url))

	_, err := execute(t, "query", "--env-file", "", "-c", cfg, "-t", "{ id }")
	assert.Error(t, err)

	out, err := execute(t, "query", "--env-file", "", "-c", cfg, "-t", "{ id }", "--no-raise")
	assert.NoError(t, err)
	assert.Empty(t, out)
}
