package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/tabgroups/internal/config"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/repository"
	"github.com/alexanderramin/tabgroups/internal/service"
	"github.com/alexanderramin/tabgroups/internal/testutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T, nodes ...*domain.Node) (*App, *repository.SQLiteNodeRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteNodeRepo(database)
	uow := testutil.NewTestUoW(database)
	testutil.SeedNodes(t, repo, nodes...)

	return &App{
		Trees:  service.NewTreeService(repo, uow),
		Moves:  service.NewMoveService(repo),
		Nodes:  service.NewNodeService(repo, uow),
		Config: config.DefaultConfig(),
	}, repo
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return plain(buf.String()), err
}

func plain(s string) string {
	return ansi.Strip(s)
}

func storedPlacement(t *testing.T, repo *repository.SQLiteNodeRepo, id string) domain.Placement {
	t.Helper()
	n, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return n.Placement()
}

// --- tree ---

func TestTreeCmd_RendersHierarchy(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "tree")

	require.NoError(t, err)
	assert.Regexp(t, `(?s)Research/.*└─ Papers.*Shopping`, out)
	assert.NotContains(t, out, "warning")
}

func TestTreeCmd_Geometry(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "tree", "--geometry")

	require.NoError(t, err)
	assert.Regexp(t, `ID\s+TITLE\s+X\s+Y\s+W\s+H`, out)
	assert.Regexp(t, `1\s+Research\s+0\s+0\s+320\s+32`, out)
	assert.Regexp(t, `2\s+Papers\s+16\s+32\s+304\s+32`, out)
	assert.Regexp(t, `3\s+Shopping\s+0\s+64\s+320\s+32`, out)
}

func TestTreeCmd_Empty(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "tree")

	require.NoError(t, err)
	assert.Contains(t, out, "No groups yet")
}

func TestTreeCmd_WarnsAboutOrphans(t *testing.T) {
	orphan := testutil.NewTestNode("Lost", testutil.WithID("lost-node"), testutil.WithParentID("gone"))
	app, _ := testApp(t, append(testutil.ScenarioNodes(), orphan)...)

	out, err := executeCmd(t, app, "tree")

	require.NoError(t, err)
	assert.Contains(t, out, "Lost")
	assert.Contains(t, out, "lost-nod has a missing parent")
	assert.Contains(t, out, "doctor --fix")
}

// --- move ---

func TestMoveCmd_InsideFolder(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "inside")

	require.NoError(t, err)
	assert.Contains(t, out, "Moved Shopping → Research at position 1")
	assert.Contains(t, out, "(1 write)")

	got := storedPlacement(t, repo, "3")
	require.NotNil(t, got.ParentID)
	assert.Equal(t, "1", *got.ParentID)
	assert.Equal(t, 1, got.Position)
	assert.Equal(t, 0, storedPlacement(t, repo, "1").Position)
}

func TestMoveCmd_BeforeSibling(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "before")

	require.NoError(t, err)
	assert.Equal(t, 0, storedPlacement(t, repo, "3").Position)
	assert.Equal(t, 1, storedPlacement(t, repo, "1").Position)
}

func TestMoveCmd_FolderIntoOwnChildIsRejected(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move", "1", "--onto", "2", "--zone", "after")

	require.Error(t, err)
	assert.ErrorIs(t, err, reorder.ErrRejected)
	assert.ErrorIs(t, err, reorder.ErrCycle)
	assert.Contains(t, err.Error(), "move rejected")
	assert.Nil(t, storedPlacement(t, repo, "1").ParentID)
}

func TestMoveCmd_LockedNodeIsRejected(t *testing.T) {
	pinned := testutil.NewTestNode("Pinned", testutil.WithID("4"), testutil.WithPosition(2), testutil.Locked())
	app, repo := testApp(t, append(testutil.ScenarioNodes(), pinned)...)

	_, err := executeCmd(t, app, "move", "4", "--onto", "1", "--zone", "inside")

	assert.ErrorIs(t, err, reorder.ErrLockedNode)
	assert.Equal(t, 2, storedPlacement(t, repo, "4").Position)
}

func TestNodeLockCmd_PinsAndReleasesNode(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "node", "lock", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked Shopping")

	_, err = executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "inside")
	assert.ErrorIs(t, err, reorder.ErrLockedNode)
	assert.Nil(t, storedPlacement(t, repo, "3").ParentID)

	out, err = executeCmd(t, app, "node", "unlock", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Unlocked Shopping")

	_, err = executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "inside")
	require.NoError(t, err)
	require.NotNil(t, storedPlacement(t, repo, "3").ParentID)
}

func TestNodeLockCmd_UnknownNode(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "node", "lock", "nope")

	assert.ErrorIs(t, err, reorder.ErrNodeNotFound)
}

func TestMoveCmd_InvalidZone(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "sideways")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid drop zone")
}

func TestMoveCmd_UnknownNode(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move", "nope", "--onto", "1", "--zone", "inside")

	assert.ErrorIs(t, err, reorder.ErrNodeNotFound)
}

func TestMoveCmd_NoOp(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "move", "3", "--onto", "1", "--zone", "after")

	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to do")
}

// --- move-to ---

func TestMoveToCmd_Root(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "move-to", "2", "--root")

	require.NoError(t, err)
	assert.Contains(t, out, "Moved Papers → root at position 2")
	got := storedPlacement(t, repo, "2")
	assert.Nil(t, got.ParentID)
	assert.Equal(t, 2, got.Position)
}

func TestMoveToCmd_Folder(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move-to", "3", "--folder", "1")

	require.NoError(t, err)
	got := storedPlacement(t, repo, "3")
	require.NotNil(t, got.ParentID)
	assert.Equal(t, "1", *got.ParentID)
	assert.Equal(t, 1, got.Position)
}

func TestMoveToCmd_FlagValidation(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move-to", "3", "--folder", "1", "--root")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = executeCmd(t, app, "move-to", "3")
	assert.ErrorContains(t, err, "--folder or --root")
}

func TestMoveToCmd_NotAFolder(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "move-to", "2", "--folder", "3")

	assert.ErrorIs(t, err, reorder.ErrNotAFolder)
}

// --- drag ---

func TestDragCmd_DropInsideFolder(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	// Research occupies y 0..32; its middle band means "inside".
	out, err := executeCmd(t, app, "drag", "3", "--x", "100", "--y", "16")

	require.NoError(t, err)
	assert.Contains(t, out, "Hint: → inside Research")
	assert.Contains(t, out, "Moved Shopping → Research at position 1")
	got := storedPlacement(t, repo, "3")
	require.NotNil(t, got.ParentID)
	assert.Equal(t, "1", *got.ParentID)
}

func TestDragCmd_DropBeforeTopEdgeOfGroup(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	// Papers occupies y 32..64 and is not a folder: the top half is "before".
	out, err := executeCmd(t, app, "drag", "3", "--x", "100", "--y", "36")

	require.NoError(t, err)
	assert.Contains(t, out, "Hint: ↑ before Papers")
	got := storedPlacement(t, repo, "3")
	require.NotNil(t, got.ParentID)
	assert.Equal(t, "1", *got.ParentID)
	assert.Equal(t, 0, got.Position)
	assert.Equal(t, 1, storedPlacement(t, repo, "2").Position)
}

func TestDragCmd_DryRunMovesNothing(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "drag", "3", "--x", "100", "--y", "16", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Hint: → inside Research")
	assert.NotContains(t, out, "Moved")
	assert.Nil(t, storedPlacement(t, repo, "3").ParentID)
}

func TestDragCmd_ShortTravelCancels(t *testing.T) {
	app, repo := testApp(t, testutil.ScenarioNodes()...)

	// Shopping's center is (160, 80); moving 2px stays under the threshold.
	out, err := executeCmd(t, app, "drag", "3", "--x", "161", "--y", "81")

	require.NoError(t, err)
	assert.Contains(t, out, "did not travel far enough")
	assert.Contains(t, out, "Drop cancelled")
	assert.Equal(t, 1, storedPlacement(t, repo, "3").Position)
}

func TestDragCmd_LockedNodeCannotBePickedUp(t *testing.T) {
	pinned := testutil.NewTestNode("Pinned", testutil.WithID("4"), testutil.WithPosition(2), testutil.Locked())
	app, _ := testApp(t, append(testutil.ScenarioNodes(), pinned)...)

	_, err := executeCmd(t, app, "drag", "4", "--x", "100", "--y", "16")

	assert.ErrorIs(t, err, reorder.ErrLockedNode)
}

// --- doctor ---

func TestDoctorCmd_Healthy(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "doctor")

	require.NoError(t, err)
	assert.Contains(t, out, "tree is healthy")
}

func TestDoctorCmd_ReportsAndFixes(t *testing.T) {
	orphan := testutil.NewTestNode("Lost", testutil.WithID("lost-node"), testutil.WithParentID("gone"))
	gap := testutil.NewTestNode("Gap", testutil.WithID("gap"), testutil.WithPosition(7))
	app, repo := testApp(t, append(testutil.ScenarioNodes(), orphan, gap)...)

	out, err := executeCmd(t, app, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "orphan")
	assert.Contains(t, out, "positions")
	assert.Contains(t, out, "--fix")

	out, err = executeCmd(t, app, "doctor", "--fix")
	require.NoError(t, err)
	assert.Contains(t, out, "repaired")
	assert.Nil(t, storedPlacement(t, repo, "lost-node").ParentID)

	out, err = executeCmd(t, app, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "tree is healthy")
}

// --- node ---

func TestNodeAddCmd_IntoFolder(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "node", "add", "--title", "Reading", "--parent", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created group Reading")

	out, err = executeCmd(t, app, "tree")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)├─ Papers.*└─ Reading.*Shopping`, out)
}

func TestNodeAddCmd_Folder(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "node", "add", "--title", "Work", "--folder")

	require.NoError(t, err)
	assert.Contains(t, out, "Created folder Work")
}

func TestNodeAddCmd_RequiresTitleWhenNotInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "node", "add")

	assert.ErrorContains(t, err, "--title is required")
}

func TestNodeAddCmd_ParentMustBeFolder(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	_, err := executeCmd(t, app, "node", "add", "--title", "Nested", "--parent", "3")

	assert.ErrorIs(t, err, reorder.ErrNotAFolder)
}

func TestNodeInspectCmd(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)

	out, err := executeCmd(t, app, "node", "inspect", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Research")
	assert.Contains(t, out, "folder")
	assert.Contains(t, out, "CHILDREN")
	assert.Contains(t, out, "Papers")
}

// --- misc ---

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "browse")

	assert.ErrorContains(t, err, "interactive terminal")
}

func TestResolveNodeID_Prefix(t *testing.T) {
	nodes := []domain.Node{{ID: "abc123"}, {ID: "abd456"}, {ID: "x"}}

	id, err := resolveNodeID(nodes, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = resolveNodeID(nodes, "ab")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveNodeID(nodes, "zzz")
	assert.ErrorIs(t, err, reorder.ErrNodeNotFound)
}

func TestNoColorFlag_PlainOutput(t *testing.T) {
	app, _ := testApp(t, testutil.ScenarioNodes()...)
	buf := new(bytes.Buffer)
	root := NewRootCmd(app)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--no-color", "tree"})

	require.NoError(t, root.Execute())
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Research/")
}
