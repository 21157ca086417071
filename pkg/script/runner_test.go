package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spicery/fwdlist/pkg/fwdlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, yamlContent string) (*Runner, *test.Hook) {
	t.Helper()
	cfg, err := LoadScriptConfigFromString(yamlContent)
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	return r, hook
}

func TestDemoScript(t *testing.T) {
	r, hook := newTestRunner(t, DemoScript)
	require.NoError(t, r.Run())

	var names []string
	for _, nl := range r.Lists() {
		names = append(names, nl.Name)
	}
	assert.Equal(t, []string{"backup", "blanks", "letters", "numbers"}, names)

	backup, ok := r.List("backup")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b2", "c"}, backup.Values())

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "script finished", last.Message)
	assert.Equal(t, "demo", last.Data["script"])
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	r, _ := newTestRunner(t, `
name: failing
lists:
  - name: l
    values: ["x"]
steps:
  - list: l
    popFront: true
  - name: second pop
    list: l
    popFront: true
  - list: l
    pushFront: "never"
`)
	err := r.Run()
	require.Error(t, err)
	assert.True(t, fwdlist.IsEmptyContainer(err))
	assert.Contains(t, err.Error(), `step 1 "second pop" on list "l"`)

	l, _ := r.List("l")
	assert.True(t, l.IsEmpty())
}

func TestExpectErrorEmpty(t *testing.T) {
	r, _ := newTestRunner(t, `
lists:
  - name: l
    values: ["x"]
steps:
  - list: l
    popFront: true
    expectError: empty
`)
	err := r.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an empty container error")
}

func TestExpectFailures(t *testing.T) {
	tests := []struct {
		name   string
		expect string
		want   string
	}{
		{"size", "size: 5", "size is 2, want 5"},
		{"empty", "empty: true", "empty is false, want true"},
		{"front", "front: b", `front is "a", want "b"`},
		{"values", `values: ["b", "a"]`, "values are [a b], want [b a]"},
		{"contains", "contains: z", `"z" not found`},
		{"missing", "missing: a", `"a" unexpectedly found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRunner(t, `
lists:
  - name: l
    values: ["a", "b"]
steps:
  - list: l
    expect: {`+tt.expect+`}
`)
			err := r.Run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrExpectationFailed))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpectFrontOnEmptyList(t *testing.T) {
	r, _ := newTestRunner(t, `
lists:
  - name: l
steps:
  - list: l
    expect: {front: x}
`)
	err := r.Run()
	assert.True(t, errors.Is(err, ErrExpectationFailed))
}

func TestUnknownList(t *testing.T) {
	r, _ := newTestRunner(t, `
lists:
  - name: l
steps:
  - list: l
    swapWith: nowhere
`)
	err := r.Run()
	assert.True(t, errors.Is(err, ErrUnknownList))
	assert.Contains(t, err.Error(), `"nowhere"`)
}

func TestIndexPastEnd(t *testing.T) {
	r, _ := newTestRunner(t, `
lists:
  - name: l
    values: ["a", "b"]
steps:
  - list: l
    insertAfter: {at: {index: 2}, value: "c"}
`)
	err := r.Run()
	assert.True(t, errors.Is(err, ErrPositionNotFound))
	assert.Contains(t, err.Error(), "index 2 in list of size 2")
}

func TestCopyToExistingListAssigns(t *testing.T) {
	r, _ := newTestRunner(t, `
lists:
  - name: src
    values: ["1", "2"]
  - name: dst
    values: ["old"]
steps:
  - list: src
    copyTo: dst
  - list: src
    copyTo: src
  - list: dst
    pushFront: "0"
  - list: src
    expect: {values: ["1", "2"]}
  - list: dst
    expect: {values: ["0", "1", "2"]}
`)
	require.NoError(t, r.Run())
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no operation", "steps: [{list: l}]", "no operation specified"},
		{"two operations", "steps: [{list: l, popFront: true, clear: true}]", "multiple operations"},
		{"no list", "steps: [{popFront: true}]", "step has no 'list'"},
		{"bad position", "steps: [{list: l, eraseAfter: {at: {begin: true, end: true}}}]", "exactly one of"},
		{"negative index", "steps: [{list: l, eraseAfter: {at: {index: -1}}}]", "must not be negative"},
		{"unknown expectError", "steps: [{list: l, popFront: true, expectError: boom}]", "unknown expectError"},
		{"empty swap name", `steps: [{list: l, swapWith: ""}]`, "swapWith"},
		{"duplicate list", "lists: [{name: a}, {name: a}]\nsteps: []", "declared twice"},
		{"unnamed list", "lists: [{values: [x]}]\nsteps: []", "no name"},
		{"sized and values", "lists: [{name: a, sized: 1, values: [x]}]\nsteps: []", "mutually exclusive"},
		{"negative size", "lists: [{name: a, sized: -1}]\nsteps: []", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadScriptConfigFromString(tt.yaml)
			require.NoError(t, err)
			_, err = NewRunner(cfg, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScriptConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DemoScript), 0o644))

	cfg, err := LoadScriptConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Len(t, cfg.Lists, 3)
	require.NotNil(t, cfg.Lists[2].Sized)
	assert.Equal(t, 2, *cfg.Lists[2].Sized)

	_, err = LoadScriptConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("steps: [unclosed"), 0o644))
	_, err = LoadScriptConfig(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestPositionResolve(t *testing.T) {
	l := fwdlist.Of("a", "b", "c")
	tests := []struct {
		pos  Position
		want string
		end  bool
	}{
		{Position{Kind: PositionBegin}, "a", false},
		{Position{Kind: PositionEnd}, "", true},
		{Position{Kind: PositionFind, Value: "b"}, "b", false},
		{Position{Kind: PositionFind, Value: "z"}, "", true},
		{Position{Kind: PositionIndex, Index: 0}, "a", false},
		{Position{Kind: PositionIndex, Index: 2}, "c", false},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			it, err := tt.pos.Resolve(l)
			require.NoError(t, err)
			assert.Equal(t, tt.end, it.IsEnd())
			if !tt.end {
				assert.Equal(t, tt.want, it.Value())
			}
		})
	}
}
