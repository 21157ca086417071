package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spicery/fwdlist/pkg/common"
	"github.com/spicery/fwdlist/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOutputFlags(format, output string) outputFlags {
	trim, indent, positions := 0, 0, false
	return outputFlags{format: &format, output: &output, trim: &trim, indent: &indent, positions: &positions}
}

func TestRunSaveShowDelete(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lists.db")
	log, _ := test.NewNullLogger()

	cfg, err := script.LoadScriptConfigFromString(script.DemoScript)
	require.NoError(t, err)
	runOut := filepath.Join(dir, "run.json")
	require.NoError(t, runScriptConfig(cfg, dbPath, testOutputFlags("json", runOut), log))

	f, err := os.Open(runOut)
	require.NoError(t, err)
	snapshots, err := common.ReadSnapshotsJSON(f)
	f.Close()
	require.NoError(t, err)
	require.Len(t, snapshots, 4)
	assert.Equal(t, "backup", snapshots[0].Name)

	showOut := filepath.Join(dir, "show.txt")
	require.NoError(t, showLists(dbPath, []string{"letters"}, testOutputFlags("text", showOut), log))
	text, err := os.ReadFile(showOut)
	require.NoError(t, err)
	assert.Equal(t, "letters (4 elements): [start a b2 c]\n", string(text))

	require.NoError(t, deleteLists(dbPath, []string{"letters", "backup"}, log))
	require.NoError(t, showLists(dbPath, nil, testOutputFlags("text", showOut), log))
	text, err = os.ReadFile(showOut)
	require.NoError(t, err)
	assert.Equal(t, "blanks (2 elements): [two 1]\nnumbers (0 elements): []\n", string(text))

	assert.Error(t, deleteLists(dbPath, []string{"letters"}, log))
}

func TestPrintSnapshotsUnknownFormat(t *testing.T) {
	err := printSnapshots(nil, testOutputFlags("xml", ""))
	assert.EqualError(t, err, "unknown format: xml")
}
