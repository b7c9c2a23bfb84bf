package tui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cj3636/glit/internal/config"
	"github.com/cj3636/glit/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService replays canned collections and records every gateway
// call, so tests can assert both the state transitions and the exact
// calls the state machine makes.
type fakeService struct {
	commits  []git.Commit
	status   []git.StatusFile
	stashes  []git.StashEntry
	branches []git.Branch
	diff     git.CommitDiff
	fileDiff string
	preview  string
	lastMsg  string

	calls []string
	err   error // when set, every gateway call fails with it
}

func (f *fakeService) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeService) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeService) Commits(filter *git.SearchFilter) ([]git.Commit, error) {
	call := "commits"
	if filter != nil {
		kind := "grep"
		if filter.Kind == git.SearchAuthor {
			kind = "author"
		}
		call = fmt.Sprintf("commits %s=%s", kind, filter.Query)
	}
	if err := f.record(call); err != nil {
		return nil, err
	}
	return f.commits, nil
}

func (f *fakeService) CommitDiff(hash string) (git.CommitDiff, error) {
	if err := f.record("commit-diff " + hash); err != nil {
		return git.CommitDiff{}, err
	}
	return f.diff, nil
}

func (f *fakeService) Status() ([]git.StatusFile, error) {
	if err := f.record("status"); err != nil {
		return nil, err
	}
	return f.status, nil
}

func (f *fakeService) Stashes() ([]git.StashEntry, error) {
	if err := f.record("stashes"); err != nil {
		return nil, err
	}
	return f.stashes, nil
}

func (f *fakeService) Branches() ([]git.Branch, error) {
	if err := f.record("branches"); err != nil {
		return nil, err
	}
	return f.branches, nil
}

func (f *fakeService) FileDiff(path string, staged bool) (string, error) {
	if err := f.record(fmt.Sprintf("file-diff %s staged=%v", path, staged)); err != nil {
		return "", err
	}
	return f.fileDiff, nil
}

func (f *fakeService) UntrackedPreview(path string) (string, error) {
	if err := f.record("preview " + path); err != nil {
		return "", err
	}
	return f.preview, nil
}

func (f *fakeService) LastCommitMessage() (string, error) {
	if err := f.record("last-message"); err != nil {
		return "", err
	}
	return f.lastMsg, nil
}

func (f *fakeService) do(call string) (string, error) {
	if err := f.record(call); err != nil {
		return "", err
	}
	return "ok: " + call, nil
}

func (f *fakeService) Stage(path string) (string, error)   { return f.do("stage " + path) }
func (f *fakeService) Unstage(path string) (string, error) { return f.do("unstage " + path) }
func (f *fakeService) StageAll() (string, error)           { return f.do("stage-all") }
func (f *fakeService) UnstageAll() (string, error)         { return f.do("unstage-all") }
func (f *fakeService) Commit(msg string) (string, error)   { return f.do("commit " + msg) }
func (f *fakeService) CommitAmend(msg string) (string, error) {
	return f.do("amend " + msg)
}
func (f *fakeService) Discard(path string) (string, error) { return f.do("discard " + path) }
func (f *fakeService) CreateStash(msg string, untracked bool) (string, error) {
	return f.do(fmt.Sprintf("stash-create %q untracked=%v", msg, untracked))
}
func (f *fakeService) ApplyStash(i int) (string, error) { return f.do(fmt.Sprintf("stash-apply %d", i)) }
func (f *fakeService) PopStash(i int) (string, error)   { return f.do(fmt.Sprintf("stash-pop %d", i)) }
func (f *fakeService) DropStash(i int) (string, error)  { return f.do(fmt.Sprintf("stash-drop %d", i)) }
func (f *fakeService) CreateBranchAt(name, hash string) (string, error) {
	return f.do(fmt.Sprintf("branch-at %s %s", name, hash))
}
func (f *fakeService) CreateBranch(name string) (string, error) { return f.do("branch-new " + name) }
func (f *fakeService) SwitchBranch(name string) (string, error) { return f.do("switch " + name) }
func (f *fakeService) DeleteBranch(name string, force bool) (string, error) {
	return f.do(fmt.Sprintf("delete %s force=%v", name, force))
}
func (f *fakeService) MergeBranch(name string) (string, error)   { return f.do("merge " + name) }
func (f *fakeService) CheckoutCommit(hash string) (string, error) { return f.do("checkout " + hash) }
func (f *fakeService) CherryPick(hash string) (string, error)    { return f.do("cherry-pick " + hash) }
func (f *fakeService) Revert(hash string) (string, error)        { return f.do("revert " + hash) }
func (f *fakeService) Fetch() (string, error)                    { return f.do("fetch") }
func (f *fakeService) Push(force bool) (string, error) {
	return f.do(fmt.Sprintf("push force=%v", force))
}
func (f *fakeService) Pull(rebase bool) (string, error) {
	return f.do(fmt.Sprintf("pull rebase=%v", rebase))
}

func newFakeService() *fakeService {
	return &fakeService{
		commits: git.ParseLog("* abc1234 Initial commit\n* def5678 Second commit"),
		status: []git.StatusFile{
			{Path: "staged.txt", Status: git.StatusAdded, Staged: true},
			{Path: "unstaged.txt", Status: git.StatusModified, Staged: false},
			{Path: "fresh.txt", Status: git.StatusUntracked, Staged: false},
		},
		stashes: []git.StashEntry{
			{Index: 0, Branch: "main", Message: "wip"},
			{Index: 1, Branch: "main", Message: "older"},
		},
		branches: []git.Branch{
			{Name: "main", IsCurrent: true, CommitHash: "abc1234"},
			{Name: "feature", CommitHash: "def5678"},
			{Name: "origin/main", IsRemote: true, CommitHash: "abc1234"},
		},
		diff: git.CommitDiff{Files: []git.FileDiff{
			{Filename: "x", Content: "@@ -1 +1 @@\n-old\n+new\n"},
			{Filename: "y", Content: "@@ -1 +1 @@\n-a\n+b\n"},
		}},
		fileDiff: "@@ -1 +1 @@\n-old\n+new\n",
		preview:  "@@ -1,0 +1,1 @@\n+fresh\n",
		lastMsg:  "Initial commit",
	}
}

func newTestModel(svc Service) Model {
	return NewModel(svc, config.DefaultConfig(), mustCommits(svc))
}

func mustCommits(svc Service) []git.Commit {
	commits, _ := svc.Commits(nil)
	return commits
}

func press(t *testing.T, m tea.Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "pgup":
			msg = tea.KeyMsg{Type: tea.KeyPgUp}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		m, _ = m.Update(msg)
	}
	model, ok := m.(Model)
	require.True(t, ok)
	return model
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := newTestModel(svc)

	assert.Equal(t, panelStatus, m.panel)
	assert.IsType(t, normalMode{}, m.mode)
	assert.Len(t, m.commits, 2)
	assert.Equal(t, "abc1234", m.commits[0].Hash)
	assert.Equal(t, "def5678", m.commits[1].Hash)
	assert.Equal(t, selection(0), m.logCursor)
	// First file row sits below the "Staged Changes:" header.
	assert.Equal(t, selection(1), m.statusCursor)
	assert.Equal(t, selection(0), m.stashCursor)
	assert.Equal(t, selection(0), m.branchCursor)
}

func TestPanelSwitchingKeepsState(t *testing.T) {
	t.Parallel()

	m := newTestModel(newFakeService())

	m = press(t, m, "2", "j", "3", "j", "2")
	assert.Equal(t, panelLog, m.panel)
	assert.Equal(t, selection(1), m.logCursor, "log cursor survives the panel round trip")
	assert.Equal(t, selection(1), m.stashCursor)
}

func TestLogCursorWraps(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(newFakeService()), "2")

	m = press(t, m, "j", "j")
	assert.Equal(t, selection(0), m.logCursor, "wraps past the last commit")
	m = press(t, m, "k")
	assert.Equal(t, selection(1), m.logCursor, "wraps back from the first commit")
}

func TestModeEntryCancelRoundTrip(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(newFakeService()), "2")
	before := m

	after := press(t, m, "/", "f", "i", "x", "esc")

	// Canceling restores every field; only the mode was touched in
	// between.
	assert.Equal(t, before, after)
}

func TestSearchConfirmRefetchesWithMessageFilter(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "/", "f", "i", "x", "enter")

	require.NotNil(t, m.activeFilter)
	assert.Equal(t, git.SearchMessage, m.activeFilter.Kind)
	assert.Equal(t, "fix", m.activeFilter.Query)
	assert.Equal(t, 1, svc.count("commits grep=fix"))
	assert.Equal(t, selection(0), m.logCursor)
	assert.IsType(t, normalMode{}, m.mode)
}

func TestSearchAuthorPrefix(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "/", "@", "b", "o", "b", "enter")

	require.NotNil(t, m.activeFilter)
	assert.Equal(t, git.SearchAuthor, m.activeFilter.Kind)
	assert.Equal(t, "bob", m.activeFilter.Query)
	assert.Equal(t, 1, svc.count("commits author=bob"))
}

func TestSearchEmptyConfirmClearsFilter(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "/", "x", "enter") // set a filter
	m = press(t, m, "/", "enter")                            // empty query clears it

	assert.Nil(t, m.activeFilter)
	assert.GreaterOrEqual(t, svc.count("commits"), 1)
}

func TestEscPeelsMessageThenFilterThenDiff(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "/", "x", "enter") // filter
	m = press(t, m, "enter", "f")                            // open diff + fetch message

	require.NotEmpty(t, m.message)
	m = press(t, m, "esc")
	assert.Empty(t, m.message)
	require.NotNil(t, m.activeFilter)
	assert.True(t, m.showDiff)

	m = press(t, m, "esc")
	assert.Nil(t, m.activeFilter)
	assert.True(t, m.showDiff)

	m = press(t, m, "esc")
	assert.False(t, m.showDiff)
}

func TestEscClosesDiffBeforeQuit(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "enter")
	require.True(t, m.showDiff)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Nil(t, cmd, "first esc only closes the diff")
	assert.False(t, m.showDiff)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd, "second esc quits")
}

func TestDiffToggleFetchesOnceAndDiscards(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "enter")

	assert.True(t, m.showDiff)
	require.NotNil(t, m.currentDiff)
	assert.Equal(t, selection(0), m.fileCursor)
	assert.Equal(t, 0, m.diffScroll)
	assert.Equal(t, 1, svc.count("commit-diff abc1234"))

	m = press(t, m, "j", "j") // scroll while open
	assert.Equal(t, 2, m.diffScroll)

	m = press(t, m, "enter") // close: diff is not cached
	assert.False(t, m.showDiff)
	assert.Nil(t, m.currentDiff)

	m = press(t, m, "enter") // reopen refetches
	assert.Equal(t, 2, svc.count("commit-diff abc1234"))
	assert.True(t, m.showDiff)
}

func TestDiffFileCyclingResetsScroll(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(newFakeService()), "2", "enter", "j", "j", "l")

	assert.Equal(t, selection(1), m.fileCursor)
	assert.Equal(t, 0, m.diffScroll)

	m = press(t, m, "l")
	assert.Equal(t, selection(0), m.fileCursor, "file cursor wraps")
	m = press(t, m, "h")
	assert.Equal(t, selection(1), m.fileCursor)
}

func TestDiffScrollSaturatesAtZeroAndPages(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(newFakeService()), "2", "enter", "k")
	assert.Equal(t, 0, m.diffScroll, "scroll saturates at zero")

	m = press(t, m, "pgdown")
	assert.Equal(t, pageStep, m.diffScroll)
	m = press(t, m, "j", "pgup")
	assert.Equal(t, 1, m.diffScroll)
}

func TestQuitClosesDiffFirst(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "enter")
	require.True(t, m.showDiff)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	assert.Nil(t, cmd, "first q only closes the diff")
	assert.False(t, m.showDiff)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd, "second q quits")
}

func TestTreeViewSubViewLayers(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "t")

	md, ok := m.mode.(treeMode)
	require.True(t, ok)
	assert.False(t, md.fileSelected)
	assert.Equal(t, 1, svc.count("commit-diff abc1234"))

	m = press(t, m, "j") // move in the file list
	assert.Equal(t, selection(1), m.fileCursor)

	m = press(t, m, "enter") // open file diff
	md = m.mode.(treeMode)
	assert.True(t, md.fileSelected)

	m = press(t, m, "j", "esc") // esc backs out one level only
	md, ok = m.mode.(treeMode)
	require.True(t, ok)
	assert.False(t, md.fileSelected)
	assert.Equal(t, 0, m.diffScroll)
	assert.NotNil(t, m.currentDiff)

	m = press(t, m, "esc") // esc from the list closes tree view
	assert.IsType(t, normalMode{}, m.mode)
	assert.Nil(t, m.currentDiff, "fetched diff is discarded on exit")
}

func TestHelpOverlayInterceptsKeys(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(newFakeService()), "2", "?")
	require.True(t, m.helpVisible)

	m = press(t, m, "j", "1", "enter")
	assert.True(t, m.helpVisible, "overlay swallows everything but its own keys")
	assert.Equal(t, panelLog, m.panel)
	assert.Equal(t, selection(0), m.logCursor)

	m = press(t, m, "?")
	assert.False(t, m.helpVisible)
}

func TestToggleStageUsesRowMapping(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := newTestModel(svc)

	// Initial cursor is on the staged file, under the staged header.
	m = press(t, m, " ")
	assert.Equal(t, 1, svc.count("unstage staged.txt"))
	assert.Equal(t, "ok: unstage staged.txt", m.message)
	assert.Equal(t, messageSuccess, m.messageKind)

	// Move to the first unstaged file and stage it.
	m = press(t, m, "j", " ")
	assert.Equal(t, 1, svc.count("stage unstaged.txt"))
}

func TestStageAllRefreshesStatus(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := newTestModel(svc)
	before := svc.count("status")

	m = press(t, m, "a")
	assert.Equal(t, 1, svc.count("stage-all"))
	assert.Equal(t, before+1, svc.count("status"))
	assert.Equal(t, selection(1), m.statusCursor, "cursor reset to the first file row")
}

func TestCommitFlow(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "c", "g", "o", "enter")

	assert.Equal(t, 1, svc.count("commit go"))
	assert.IsType(t, normalMode{}, m.mode)
	assert.Equal(t, messageSuccess, m.messageKind)
}

func TestCommitEmptyMessageGuard(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "c", "enter")

	assert.Equal(t, 0, svc.count("commit "))
	assert.Equal(t, "Commit message cannot be empty", m.message)
	assert.Equal(t, messageError, m.messageKind)
	assert.IsType(t, normalMode{}, m.mode, "mode exits even on the guard")
}

func TestAmendPrefillsLastSubject(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "A")

	md, ok := m.mode.(commitMessageMode)
	require.True(t, ok)
	assert.True(t, md.amend)
	assert.Equal(t, "Initial commit", md.input.Value())

	m = press(t, m, "enter")
	assert.Equal(t, 1, svc.count("amend Initial commit"))
}

func TestAmendPrefillFailureStaysNormal(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.err = errors.New("git log: fatal: bad revision")
	m := press(t, newTestModel(svc), "A")

	assert.IsType(t, normalMode{}, m.mode)
	assert.Equal(t, messageError, m.messageKind)
}

func TestDiscardGuardsStagedFile(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "x") // cursor on the staged file

	assert.Equal(t, 0, svc.count("discard staged.txt"))
	assert.Equal(t, "Cannot discard staged file. Unstage it first.", m.message)

	m = press(t, m, "j", "x")
	assert.Equal(t, 1, svc.count("discard unstaged.txt"))
}

func TestStatusDiffUntrackedPreview(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	// Third file row (after headers): the untracked file.
	m := press(t, newTestModel(svc), "j", "j", "enter")

	assert.True(t, m.statusShowDiff)
	assert.Equal(t, 1, svc.count("preview fresh.txt"))
	assert.Equal(t, svc.preview, m.statusDiff)

	m = press(t, m, "enter")
	assert.False(t, m.statusShowDiff)
	assert.Empty(t, m.statusDiff)
}

func TestStatusDiffTrackedUsesStagedFlag(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "enter") // staged file selected

	assert.True(t, m.statusShowDiff)
	assert.Equal(t, 1, svc.count("file-diff staged.txt staged=true"))
}

func TestStashCreateHonorsUntrackedConfig(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	cfg := config.DefaultConfig()
	cfg.StashUntracked = true
	m := NewModel(svc, cfg, mustCommits(svc))

	m = press(t, m, "s", "w", "i", "p", "enter")
	assert.Equal(t, 1, svc.count(`stash-create "wip" untracked=true`))
	assert.IsType(t, normalMode{}, m.mode)
}

func TestStashOperationsUsePositionalIndex(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "3", "j", "p")

	assert.Equal(t, 1, svc.count("stash-pop 1"))
	// Pop refreshes both status and stashes.
	assert.GreaterOrEqual(t, svc.count("stashes"), 2)
	assert.Equal(t, selection(0), m.stashCursor)
}

func TestBranchGuards(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "4")

	// Current branch: switch is an Info no-op, delete and merge refuse.
	m = press(t, m, "enter")
	assert.Equal(t, "Already on this branch", m.message)
	assert.Equal(t, messageInfo, m.messageKind)

	m = press(t, m, "d")
	assert.Equal(t, "Cannot delete current branch", m.message)

	m = press(t, m, "m")
	assert.Equal(t, "Cannot merge a branch into itself", m.message)

	// Remote branch cannot be deleted from this view.
	m = press(t, m, "j", "j", "d")
	assert.Equal(t, "Cannot delete remote branches from this view", m.message)

	assert.Equal(t, 0, svc.count("switch main"))
	assert.Equal(t, 0, svc.count("delete main force=false"))
	assert.Equal(t, 0, svc.count("merge main"))
}

func TestBranchSwitch(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "4", "j", "enter")

	assert.Equal(t, 1, svc.count("switch feature"))
	assert.Equal(t, messageSuccess, m.messageKind)
}

func TestMergeConflictDowngradedToInfo(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "4", "j")
	svc.err = errors.New("git merge: CONFLICT (content): Merge conflict in a.txt")

	m = press(t, m, "m")
	assert.Equal(t, messageInfo, m.messageKind)
	assert.Equal(t, "Merge has conflicts. Resolve them and commit the result.", m.message)
}

func TestCherryPickConflictDowngradedToInfo(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2")
	svc.err = errors.New("git cherry-pick: error: could not apply abc1234... CONFLICT")

	m = press(t, m, "p")
	assert.Equal(t, messageInfo, m.messageKind)
	assert.Contains(t, m.message, "Cherry-pick has conflicts")
}

func TestRevertHardFailureIsError(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2")
	svc.err = errors.New("git revert: fatal: bad object")

	m = press(t, m, "r")
	assert.Equal(t, messageError, m.messageKind)
	assert.Contains(t, m.message, "bad object")
}

func TestBranchFromCommitCapturesHashAtEntry(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "j", "b")

	md, ok := m.mode.(branchNameMode)
	require.True(t, ok)
	assert.Equal(t, "def5678", md.hash)

	m = press(t, m, "v", "2", "enter")
	assert.Equal(t, 1, svc.count("branch-at v2 def5678"))
	assert.IsType(t, normalMode{}, m.mode)
}

func TestActionFailureLeavesCollectionsIntact(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := newTestModel(svc)
	statusBefore := m.statusFiles

	svc.err = errors.New("git add: permission denied")
	m = press(t, m, " ")

	assert.Equal(t, messageError, m.messageKind)
	assert.Equal(t, statusBefore, m.statusFiles, "failure leaves state untouched")
}

func TestNewMessageOverwritesOld(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := press(t, newTestModel(svc), "2", "f")
	first := m.message
	require.NotEmpty(t, first)

	m = press(t, m, "P")
	assert.NotEqual(t, first, m.message)
	assert.Equal(t, "ok: push force=false", m.message)
}

func TestPullRefreshesStatusAndBranches(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	m := newTestModel(svc)
	statusCalls := svc.count("status")
	branchCalls := svc.count("branches")

	m = press(t, m, "2", "U")
	assert.Equal(t, 1, svc.count("pull rebase=false"))
	assert.Equal(t, statusCalls+1, svc.count("status"))
	assert.Equal(t, branchCalls+1, svc.count("branches"))
}

func TestViewRendersWithoutPanicOnEmptyCollections(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	m := NewModel(svc, config.DefaultConfig(), nil)

	assert.NotPanics(t, func() {
		for _, key := range []string{"j", "k", " ", "enter", "2", "j", "enter", "3", "j", "a", "4", "j", "enter"} {
			m = press(t, m, key)
			_ = m.View()
		}
	})
}
