package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--ledger", "badger", "--badger.dir", dir}, args...))

	err := rootCmd.Execute()

	return buf.String(), err
}

func receiptID(t *testing.T, out string) string {
	var r struct {
		ID string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)
	require.NotEmpty(t, r.ID)

	return r.ID
}

func TestQuillctl(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "profile", "add", "--username", "writer", "--owner", "local")
	require.NoError(t, err)
	profileID := receiptID(t, out)

	out, err = run(t, dir, "work", "add", "--title", "T", "--description", "D", "--author", profileID, "--content", "hello")
	require.NoError(t, err)
	workID := receiptID(t, out)

	out, err = run(t, dir, "work", "get", workID)
	require.NoError(t, err)
	assert.Contains(t, out, `"Content": "hello"`)
	assert.Contains(t, out, `"Username": "writer"`)

	_, err = run(t, dir, "work", "remove", workID, "--owner", "someone")
	require.Error(t, err)

	_, err = run(t, dir, "work", "remove", workID, "--owner", "local")
	require.NoError(t, err)

	_, err = run(t, dir, "work", "get", workID)
	require.Error(t, err)

	out, err = run(t, dir, "record", workID)
	require.NoError(t, err)
	assert.Contains(t, out, `"Body": "hello"`)
}
