package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/petri/internal/board"
)

// runCLI executes one petri invocation with a fresh command tree,
// capturing stdout. Each call is one externally-serialized operation,
// exactly how the binary is used.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// response mirrors CLIResponse with a raw Data payload so tests can
// decode it into the concrete view type.
type response struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *CLIError       `json:"error"`
}

func decodeBoardView(t *testing.T, out string) boardView {
	t.Helper()
	var resp response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	var view boardView
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	return view
}

func decodeError(t *testing.T, out string) *CLIError {
	t.Helper()
	var resp response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "petri.db")
}

// blinkerField is a horizontal blinker at y=5, base64-encoded the way
// it crosses the CLI boundary.
func blinkerField(t *testing.T) string {
	t.Helper()
	b := board.New()
	b.SetBit(4, 5, true)
	b.SetBit(5, 5, true)
	b.SetBit(6, 5, true)
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

func TestInitCommand(t *testing.T) {
	db := testDB(t)

	out, err := runCLI(t, "init", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "registry ready")
	assert.Contains(t, out, "clock height 0")

	// Idempotent: a second init leaves the registry untouched.
	out, err = runCLI(t, "init", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "clock height 0")
}

func TestCreateGetStepRoundTrip(t *testing.T) {
	db := testDB(t)
	_, err := runCLI(t, "init", "--db", db)
	require.NoError(t, err)

	out, err := runCLI(t, "--format", "json", "create", "--db", db, "--field", blinkerField(t))
	require.NoError(t, err)
	created := decodeBoardView(t, out)
	assert.Equal(t, uint64(0), created.Index)
	assert.Equal(t, blinkerField(t), created.Field)
	assert.Equal(t, "....XXX.........", created.Rows[5])

	out, err = runCLI(t, "--format", "json", "step", "--db", db, "0")
	require.NoError(t, err)
	stepped := decodeBoardView(t, out)
	assert.Equal(t, ".....X..........", stepped.Rows[4])
	assert.Equal(t, ".....X..........", stepped.Rows[5])
	assert.Equal(t, ".....X..........", stepped.Rows[6])

	// The successor replaced the stored entry at the same index.
	out, err = runCLI(t, "--format", "json", "get", "--db", db, "0")
	require.NoError(t, err)
	got := decodeBoardView(t, out)
	assert.Equal(t, stepped.Field, got.Field)
}

func TestCreateCommand_SequentialIndices(t *testing.T) {
	db := testDB(t)

	for want := uint64(0); want < 3; want++ {
		out, err := runCLI(t, "--format", "json", "create", "--db", db, "--field", blinkerField(t))
		require.NoError(t, err)
		assert.Equal(t, want, decodeBoardView(t, out).Index)
	}
}

func TestCreateCommand_RejectsShortBuffer(t *testing.T) {
	db := testDB(t)
	short := base64.StdEncoding.EncodeToString(make([]byte, board.FieldLen-1))

	out, err := runCLI(t, "--format", "json", "create", "--db", db, "--field", short)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "INVALID_FIELD_LENGTH", decodeError(t, out).Code)
}

func TestCreateCommand_RejectsBadBase64(t *testing.T) {
	db := testDB(t)

	_, err := runCLI(t, "create", "--db", db, "--field", "not-base64!!!")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCreateCommand_FromPatternFile(t *testing.T) {
	db := testDB(t)
	path := filepath.Join(t.TempDir(), "blinker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: blinker\nrows:\n  - \"\"\n  - \"\"\n  - \"\"\n  - \"\"\n  - \"\"\n  - \"....XXX\"\n"), 0o644))

	out, err := runCLI(t, "--format", "json", "create", "--db", db, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "....XXX.........", decodeBoardView(t, out).Rows[5])
}

func TestGetCommand_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := runCLI(t, "init", "--db", db)
	require.NoError(t, err)

	out, err := runCLI(t, "--format", "json", "get", "--db", db, "5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "INDEX_NOT_FOUND", decodeError(t, out).Code)
}

func TestStepCommand_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := runCLI(t, "init", "--db", db)
	require.NoError(t, err)

	out, err := runCLI(t, "--format", "json", "step", "--db", db, "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "INDEX_NOT_FOUND", decodeError(t, out).Code)
}

func TestGetCommand_BadDatabasePath(t *testing.T) {
	db := filepath.Join(t.TempDir(), "missing", "petri.db")

	_, err := runCLI(t, "get", "--db", db, "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetCommand_RejectsBadIndex(t *testing.T) {
	_, err := runCLI(t, "get", "--db", testDB(t), "banana")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTickCommand_StampsCreate(t *testing.T) {
	db := testDB(t)
	_, err := runCLI(t, "init", "--db", db)
	require.NoError(t, err)

	out, err := runCLI(t, "tick", "--db", db, "--n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "clock height 3")

	out, err = runCLI(t, "--format", "json", "create", "--db", db, "--field", blinkerField(t))
	require.NoError(t, err)
	created := decodeBoardView(t, out)
	assert.Equal(t, uint64(3), created.CurrentHeight)
	assert.Equal(t, uint64(0), created.PrevHeight)

	// A step after a further tick records the parent's height.
	_, err = runCLI(t, "tick", "--db", db)
	require.NoError(t, err)

	out, err = runCLI(t, "--format", "json", "step", "--db", db, "0")
	require.NoError(t, err)
	stepped := decodeBoardView(t, out)
	assert.Equal(t, uint64(4), stepped.CurrentHeight)
	assert.Equal(t, uint64(3), stepped.PrevHeight)
}

func TestLogCommand_RecordsOperations(t *testing.T) {
	db := testDB(t)
	_, err := runCLI(t, "create", "--db", db, "--field", blinkerField(t))
	require.NoError(t, err)
	_, err = runCLI(t, "step", "--db", db, "0")
	require.NoError(t, err)

	out, err := runCLI(t, "--format", "json", "log", "--db", db)
	require.NoError(t, err)

	var resp response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	var ops []opView
	require.NoError(t, json.Unmarshal(resp.Data, &ops))
	require.Len(t, ops, 2)
	assert.Equal(t, "create", ops[0].Kind)
	assert.Equal(t, "step", ops[1].Kind)
	assert.Equal(t, uint64(0), ops[0].BoardIndex)
}
