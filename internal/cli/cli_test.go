package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bookshelf/internal/sqlite"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// testEnv runs root commands in-process against temporary directories.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
	extra     []string
}

func newTestEnv(t *testing.T, extra ...string) *testEnv {
	t.Helper()
	t.Setenv("BOOKSHELF_BACKEND", "")
	t.Setenv("BOOKSHELF_ID_SCHEME", "")
	t.Setenv("BOOKSHELF_CONFIG_DIR", "")
	t.Setenv("BOOKSHELF_DATA_DIR", "")
	root := t.TempDir()
	return &testEnv{
		t:         t,
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
		extra:     extra,
	}
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	cmd := newRootCmd(&options{log: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, e.extra...)
	cmd.SetArgs(append(full, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "bookshelf %s\n%s", strings.Join(args, " "), out)
	return out
}

// shelves decodes --json output.
type shelves struct {
	Refresh string           `json:"refresh"`
	Unread  types.Collection `json:"unread"`
	Read    types.Collection `json:"read"`
}

func (e *testEnv) runJSON(args ...string) shelves {
	e.t.Helper()
	out := e.mustRun(append(args, "--json")...)
	var s shelves
	require.NoError(e.t, json.Unmarshal([]byte(out), &s), out)
	return s
}

func (e *testEnv) add(title, author, year string, complete bool) types.Book {
	e.t.Helper()
	args := []string{"add", "--title", title, "--author", author, "--year", year}
	if complete {
		args = append(args, "--complete")
	}
	s := e.runJSON(args...)
	shelf := s.Unread
	if complete {
		shelf = s.Read
	}
	require.NotEmpty(e.t, shelf)
	return shelf[len(shelf)-1]
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("version")
	assert.Contains(t, out, "bookshelf v")
	assert.Contains(t, out, modulePath)
}

func TestInitWritesConfigAndEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("init")
	assert.Contains(t, out, "Bookshelf initialized")
	assert.Contains(t, out, "0 book(s)")

	_, err := os.Stat(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.dataDir, "books.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// Idempotent and keeps books.
	env.add("Go", "A", "2020", false)
	out = env.mustRun("init")
	assert.Contains(t, out, "1 book(s)")
	assert.NotContains(t, out, "Wrote")
}

func TestAddListAndShelves(t *testing.T) {
	env := newTestEnv(t)

	s := env.runJSON("add", "--title", "The Go Programming Language", "--author", "Donovan", "--year", "2015")
	assert.Equal(t, "unread", s.Refresh)
	require.Len(t, s.Unread, 1)
	assert.Nil(t, s.Read, "only the unread shelf is refreshed")

	env.add("Concurrency in Go", "Cox-Buday", "2017", true)

	list := env.runJSON("list")
	assert.Equal(t, []string{"The Go Programming Language"}, titles(list.Unread))
	assert.Equal(t, []string{"Concurrency in Go"}, titles(list.Read))

	read := env.runJSON("list", "--shelf", "read")
	assert.Nil(t, read.Unread)
	assert.Len(t, read.Read, 1)

	text := env.mustRun("list")
	assert.Contains(t, text, "Unread (1)")
	assert.Contains(t, text, "Read (1)")
	assert.Contains(t, text, "Donovan")
}

func TestAddRequiresTitleAndAuthor(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("add", "--author", "A")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestEditKeepsUnchangedFields(t *testing.T) {
	env := newTestEnv(t)
	b := env.add("Go", "A", "2020", false)

	s := env.runJSON("edit", b.ID, "--title", "Go, 2nd ed.")
	assert.Equal(t, "both", s.Refresh)
	require.Len(t, s.Unread, 1)
	assert.Equal(t, types.Book{ID: b.ID, Title: "Go, 2nd ed.", Author: "A", Year: 2020}, s.Unread[0])

	s = env.runJSON("edit", b.ID, "--complete=true")
	assert.Empty(t, s.Unread)
	require.Len(t, s.Read, 1)
	assert.Equal(t, "Go, 2nd ed.", s.Read[0].Title)
}

func TestEditUnknownID(t *testing.T) {
	env := newTestEnv(t)
	env.add("Go", "A", "2020", false)

	_, err := env.run("edit", "missing", "--title", "x")
	assert.ErrorIs(t, err, types.ErrIDNotFound)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestMoveAndDelete(t *testing.T) {
	env := newTestEnv(t)
	b := env.add("Go", "A", "2020", false)

	s := env.runJSON("move", b.ID)
	assert.Empty(t, s.Unread)
	require.Len(t, s.Read, 1)
	assert.True(t, s.Read[0].IsComplete)

	s = env.runJSON("delete", b.ID)
	assert.Equal(t, "read", s.Refresh)
	assert.Empty(t, s.Read)

	_, err := env.run("delete", b.ID)
	assert.ErrorIs(t, err, types.ErrIDNotFound)
}

func TestIDArgumentRequired(t *testing.T) {
	env := newTestEnv(t)
	for _, sub := range []string{"edit", "delete", "move", "show"} {
		t.Run(sub, func(t *testing.T) {
			_, err := env.run(sub)
			require.Error(t, err)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	b := env.add("Go", "A", "2020", true)

	out := env.mustRun("show", b.ID)
	assert.Contains(t, out, "Title:")
	assert.Contains(t, out, "read")

	var got types.Book
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("show", b.ID, "--json")), &got))
	assert.Equal(t, b, got)
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	env.add("The Go Programming Language", "Donovan", "2015", false)
	env.add("Concurrency in Go", "Cox-Buday", "2017", true)
	env.add("Programming Rust", "Blandy", "2017", false)

	s := env.runJSON("search", "2017")
	assert.Equal(t, []string{"Programming Rust"}, titles(s.Unread))
	assert.Equal(t, []string{"Concurrency in Go"}, titles(s.Read))

	s = env.runJSON("search", "DONOVAN")
	assert.Equal(t, []string{"The Go Programming Language"}, titles(s.Unread))
	assert.Empty(t, s.Read)

	s = env.runJSON("search")
	assert.Len(t, s.Unread, 2)
	assert.Len(t, s.Read, 1)
}

func TestSQLiteBackend(t *testing.T) {
	env := newTestEnv(t, "--backend", types.BackendSQLite)
	env.add("Go", "A", "2020", false)

	_, err := os.Stat(filepath.Join(env.dataDir, sqlite.DBFileName))
	require.NoError(t, err)

	list := env.runJSON("list")
	assert.Equal(t, []string{"Go"}, titles(list.Unread))
}

func TestBackendFromConfigFile(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"),
		[]byte("backend: sqlite\nid_scheme: timestamp\n"), 0o644))

	b := env.add("Go", "A", "2020", false)
	assert.NotContains(t, b.ID, "-", "timestamp ids are plain digits")

	_, err := os.Stat(filepath.Join(env.dataDir, sqlite.DBFileName))
	require.NoError(t, err)
}

func TestUnknownBackend(t *testing.T) {
	env := newTestEnv(t, "--backend", "redis")
	_, err := env.run("list")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestCorruptStorageIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, "books.json"), []byte("{"), 0o644))

	_, err := env.run("list")
	assert.ErrorIs(t, err, types.ErrCorruptData)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestInvalidShelf(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("list", "--shelf", "maybe")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrMissingID))
	assert.Equal(t, exitSysError, exitCode(systemError{errors.New("disk")}))
	assert.Equal(t, exitUserError, exitCode(errors.New("unknown command")))
	assert.Equal(t, exitUserError, exitCode(classify(types.ErrIDNotFound)))
	assert.Equal(t, exitSysError, exitCode(classify(errors.New("disk"))))
}

func titles(c types.Collection) []string {
	out := make([]string, len(c))
	for i, b := range c {
		out[i] = b.Title
	}
	return out
}
