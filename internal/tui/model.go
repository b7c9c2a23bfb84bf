package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cj3636/glit/internal/config"
	"github.com/cj3636/glit/internal/git"
)

// panel identifies one of the four persistent tabs. Each panel owns
// its own collection and cursor; switching panels never clears the
// others.
type panel int

const (
	panelStatus panel = iota
	panelLog
	panelStash
	panelBranches
)

// messageKind is the severity of the single-slot status message.
type messageKind int

const (
	messageSuccess messageKind = iota
	messageError
	messageInfo
)

// Model is the whole application state: one owned aggregate that
// every transition function receives, with no globals. All gateway
// calls happen synchronously inside Update.
type Model struct {
	svc    Service
	cfg    *config.Config
	styles *Styles

	// clipboard receives OSC52 escapes; nil falls back to stderr so
	// the escape reaches the terminal without touching the renderer's
	// stdout stream. Tests point it at a buffer.
	clipboard io.Writer

	width  int
	height int

	panel       panel
	mode        mode
	helpVisible bool

	// Log panel.
	commits      []git.Commit
	logCursor    selection
	activeFilter *git.SearchFilter

	// Diff view over the selected commit (log panel and tree view).
	showDiff    bool
	currentDiff *git.CommitDiff
	fileCursor  selection
	diffScroll  int

	// Status panel. The cursor indexes statusRows(statusFiles).
	statusFiles      []git.StatusFile
	statusCursor     selection
	statusShowDiff   bool
	statusDiff       string
	statusDiffScroll int

	// Stash panel.
	stashes     []git.StashEntry
	stashCursor selection

	// Branches panel.
	branches     []git.Branch
	branchCursor selection

	// Single-slot status message; a new one overwrites the old.
	message     string
	messageKind messageKind
}

// NewModel builds the initial state: Normal mode, Status panel, the
// given commits, and the other three collections fetched best-effort
// (a failure there degrades to an empty panel, not a startup error).
func NewModel(svc Service, cfg *config.Config, commits []git.Commit) Model {
	m := Model{
		svc:       svc,
		cfg:       cfg,
		styles:    createStyles(cfg.Theme),
		panel:     panelStatus,
		mode:      normalMode{},
		commits:   commits,
		logCursor: firstSelection(len(commits)),
	}

	if files, err := svc.Status(); err == nil {
		m.statusFiles = files
	}
	m.statusCursor = firstFileRow(statusRows(m.statusFiles))

	if stashes, err := svc.Stashes(); err == nil {
		m.stashes = stashes
	}
	m.stashCursor = firstSelection(len(m.stashes))

	if branches, err := svc.Branches(); err == nil {
		m.branches = branches
	}
	m.branchCursor = firstSelection(len(m.branches))

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setMessage(text string, kind messageKind) {
	m.message = text
	m.messageKind = kind
}

func (m *Model) setError(err error) {
	m.setMessage("Error: "+err.Error(), messageError)
}

func (m *Model) clearMessage() {
	m.message = ""
}

// refreshStatus replaces the status collection wholesale and resets
// its cursor; there is no incremental update.
func (m *Model) refreshStatus() {
	files, err := m.svc.Status()
	if err != nil {
		m.setMessage("Failed to refresh status: "+err.Error(), messageError)
		return
	}
	m.statusFiles = files
	m.statusCursor = firstFileRow(statusRows(files))
}

func (m *Model) refreshStashes() {
	stashes, err := m.svc.Stashes()
	if err != nil {
		m.setMessage("Failed to refresh stashes: "+err.Error(), messageError)
		return
	}
	m.stashes = stashes
	m.stashCursor = firstSelection(len(stashes))
}

func (m *Model) refreshBranches() {
	branches, err := m.svc.Branches()
	if err != nil {
		m.setMessage("Failed to refresh branches: "+err.Error(), messageError)
		return
	}
	m.branches = branches
	m.branchCursor = firstSelection(len(branches))
}

// reloadCommits re-fetches the log through the active filter and
// resets the log cursor.
func (m *Model) reloadCommits() {
	commits, err := m.svc.Commits(m.activeFilter)
	if err != nil {
		m.setMessage("Failed to reload commits: "+err.Error(), messageError)
		return
	}
	m.commits = commits
	m.logCursor = firstSelection(len(commits))
}

func (m *Model) selectedCommit() (git.Commit, bool) {
	if !m.logCursor.valid(len(m.commits)) {
		return git.Commit{}, false
	}
	return m.commits[m.logCursor], true
}

func (m *Model) selectedStash() (git.StashEntry, bool) {
	if !m.stashCursor.valid(len(m.stashes)) {
		return git.StashEntry{}, false
	}
	return m.stashes[m.stashCursor], true
}

func (m *Model) selectedBranch() (git.Branch, bool) {
	if !m.branchCursor.valid(len(m.branches)) {
		return git.Branch{}, false
	}
	return m.branches[m.branchCursor], true
}

func (m *Model) selectedDiffFile() (git.FileDiff, bool) {
	if m.currentDiff == nil || !m.fileCursor.valid(len(m.currentDiff.Files)) {
		return git.FileDiff{}, false
	}
	return m.currentDiff.Files[m.fileCursor], true
}

// openDiff fetches the diff of the selected commit: exactly one
// gateway call per open, scroll reset, first file selected.
func (m *Model) openDiff() bool {
	commit, ok := m.selectedCommit()
	if !ok {
		return false
	}
	diff, err := m.svc.CommitDiff(commit.Hash)
	if err != nil {
		m.setError(err)
		return false
	}
	m.currentDiff = &diff
	m.fileCursor = firstSelection(len(diff.Files))
	m.diffScroll = 0
	return true
}

// closeDiff discards the fetched diff entirely; re-opening re-fetches.
func (m *Model) closeDiff() {
	m.showDiff = false
	m.currentDiff = nil
	m.fileCursor = noSelection
	m.diffScroll = 0
}

func (m *Model) scrollDiffBy(delta int) {
	m.diffScroll += delta
	if m.diffScroll < 0 {
		m.diffScroll = 0
	}
}

func (m *Model) scrollStatusDiffBy(delta int) {
	m.statusDiffScroll += delta
	if m.statusDiffScroll < 0 {
		m.statusDiffScroll = 0
	}
}
