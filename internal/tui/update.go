package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cj3636/glit/internal/git"
)

// pageStep is how many lines a page scroll moves.
const pageStep = 10

// Update implements tea.Model. Guard order: emergency quit, then the
// help overlay (outermost layer, swallows everything but its own
// toggle), then the active mode, then normal-mode global keys, then
// the active panel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.helpVisible {
		switch msg.String() {
		case "?", "esc", "q":
			m.helpVisible = false
		}
		return m, nil
	}

	switch mode := m.mode.(type) {
	case searchMode:
		return m.handleSearchKey(mode, msg)
	case branchNameMode:
		return m.handleBranchNameKey(mode, msg)
	case commitMessageMode:
		return m.handleCommitMessageKey(mode, msg)
	case stashMessageMode:
		return m.handleStashMessageKey(mode, msg)
	case newBranchMode:
		return m.handleNewBranchKey(mode, msg)
	case treeMode:
		return m.handleTreeKey(mode, msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleSearchKey(mode searchMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode{}
		return m, nil
	case "enter":
		m.executeSearch(mode.input.Value())
		m.mode = normalMode{}
		return m, nil
	}

	var cmd tea.Cmd
	mode.input, cmd = mode.input.Update(msg)
	m.mode = mode
	return m, cmd
}

// executeSearch applies the typed query: @-prefixed means author,
// anything else non-empty means message, empty clears the filter.
// The commit list is always re-fetched through the gateway.
func (m *Model) executeSearch(query string) {
	switch {
	case query == "":
		m.activeFilter = nil
	case query[0] == '@':
		m.activeFilter = git.AuthorFilter(query[1:])
	default:
		m.activeFilter = git.MessageFilter(query)
	}
	m.reloadCommits()
}

func (m Model) handleBranchNameKey(mode branchNameMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode{}
		return m, nil
	case "enter":
		m.createBranchAt(mode.input.Value(), mode.hash)
		m.mode = normalMode{}
		return m, nil
	}

	var cmd tea.Cmd
	mode.input, cmd = mode.input.Update(msg)
	m.mode = mode
	return m, cmd
}

func (m Model) handleCommitMessageKey(mode commitMessageMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode{}
		return m, nil
	case "enter":
		m.executeCommit(mode.input.Value(), mode.amend)
		m.mode = normalMode{}
		return m, nil
	}

	var cmd tea.Cmd
	mode.input, cmd = mode.input.Update(msg)
	m.mode = mode
	return m, cmd
}

func (m Model) handleStashMessageKey(mode stashMessageMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode{}
		return m, nil
	case "enter":
		m.executeCreateStash(mode.input.Value())
		m.mode = normalMode{}
		return m, nil
	}

	var cmd tea.Cmd
	mode.input, cmd = mode.input.Update(msg)
	m.mode = mode
	return m, cmd
}

func (m Model) handleNewBranchKey(mode newBranchMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = normalMode{}
		return m, nil
	case "enter":
		m.executeCreateNewBranch(mode.input.Value())
		m.mode = normalMode{}
		return m, nil
	}

	var cmd tea.Cmd
	mode.input, cmd = mode.input.Update(msg)
	m.mode = mode
	return m, cmd
}

func (m Model) handleTreeKey(mode treeMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "t":
		m.closeDiff()
		m.mode = normalMode{}
	case "?":
		m.helpVisible = true
	case "esc":
		if mode.fileSelected {
			// Back out one level: file diff to file list.
			mode.fileSelected = false
			m.diffScroll = 0
			m.mode = mode
		} else {
			m.closeDiff()
			m.mode = normalMode{}
		}
	case "enter":
		mode.fileSelected = !mode.fileSelected
		m.diffScroll = 0
		m.mode = mode
	case "j", "down":
		if mode.fileSelected {
			m.scrollDiffBy(1)
		} else if m.currentDiff != nil {
			m.fileCursor = m.fileCursor.next(len(m.currentDiff.Files))
		}
	case "k", "up":
		if mode.fileSelected {
			m.scrollDiffBy(-1)
		} else if m.currentDiff != nil {
			m.fileCursor = m.fileCursor.prev(len(m.currentDiff.Files))
		}
	case "pgdown":
		if mode.fileSelected {
			m.scrollDiffBy(pageStep)
		}
	case "pgup":
		if mode.fileSelected {
			m.scrollDiffBy(-pageStep)
		}
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.showDiff {
			m.closeDiff()
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.helpVisible = true
		return m, nil
	case "1":
		m.panel = panelStatus
		return m, nil
	case "2":
		m.panel = panelLog
		return m, nil
	case "3":
		m.panel = panelStash
		return m, nil
	case "4":
		m.panel = panelBranches
		return m, nil
	case "esc":
		// Esc peels state in priority order: message, filter, open
		// diff, program.
		switch {
		case m.message != "":
			m.clearMessage()
		case m.activeFilter != nil:
			m.activeFilter = nil
			m.reloadCommits()
		case m.showDiff:
			m.closeDiff()
		default:
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.panel {
	case panelStatus:
		m.handleStatusPanelKey(msg)
	case panelLog:
		m.handleLogPanelKey(msg)
	case panelStash:
		m.handleStashPanelKey(msg)
	case panelBranches:
		m.handleBranchesPanelKey(msg)
	}

	// The panel handler may have opened an input prompt.
	if hasPromptInput(m.mode) {
		return m, textinput.Blink
	}
	return m, nil
}

func hasPromptInput(md mode) bool {
	switch md.(type) {
	case searchMode, branchNameMode, commitMessageMode, stashMessageMode, newBranchMode:
		return true
	}
	return false
}

func (m *Model) handleStatusPanelKey(msg tea.KeyMsg) {
	switch msg.String() {
	case " ":
		m.toggleStage()
	case "a":
		m.stageAll()
	case "u":
		m.unstageAll()
	case "c":
		m.mode = newCommitMessageMode(false, "")
	case "A":
		m.enterAmendMode()
	case "x":
		m.discardSelected()
	case "s":
		m.mode = newStashMessageMode()
	case "enter":
		m.toggleStatusDiff()
	case "j", "down":
		if m.statusShowDiff {
			m.scrollStatusDiffBy(1)
		} else {
			m.statusCursor = nextFileRow(m.statusCursor, statusRows(m.statusFiles))
		}
	case "k", "up":
		if m.statusShowDiff {
			m.scrollStatusDiffBy(-1)
		} else {
			m.statusCursor = prevFileRow(m.statusCursor, statusRows(m.statusFiles))
		}
	case "pgdown":
		if m.statusShowDiff {
			m.scrollStatusDiffBy(pageStep)
		}
	case "pgup":
		if m.statusShowDiff {
			m.scrollStatusDiffBy(-pageStep)
		}
	}
}

func (m *Model) handleLogPanelKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		if m.showDiff {
			m.closeDiff()
		} else if m.openDiff() {
			m.showDiff = true
		}
	case "t":
		if m.openDiff() {
			m.mode = treeMode{}
		}
	case "/":
		m.mode = newSearchMode()
	case "y":
		m.copyCommitHash()
	case "Y":
		m.copyFileDiff()
	case "E":
		m.exportCommitDiff()
	case "c":
		m.checkoutSelectedCommit()
	case "b":
		if commit, ok := m.selectedCommit(); ok {
			m.mode = newBranchNameMode(commit.Hash)
		}
	case "p":
		m.cherryPickSelected()
	case "r":
		m.revertSelected()
	case "f":
		m.fetchRemote()
	case "P":
		m.pushRemote()
	case "U":
		m.pullRemote()
	case "j", "down":
		if m.showDiff {
			m.scrollDiffBy(1)
		} else {
			m.logCursor = m.logCursor.next(len(m.commits))
			m.diffScroll = 0
		}
	case "k", "up":
		if m.showDiff {
			m.scrollDiffBy(-1)
		} else {
			m.logCursor = m.logCursor.prev(len(m.commits))
			m.diffScroll = 0
		}
	case "h", "left":
		if m.showDiff && m.currentDiff != nil {
			m.fileCursor = m.fileCursor.prev(len(m.currentDiff.Files))
			m.diffScroll = 0
		}
	case "l", "right":
		if m.showDiff && m.currentDiff != nil {
			m.fileCursor = m.fileCursor.next(len(m.currentDiff.Files))
			m.diffScroll = 0
		}
	case "pgdown":
		if m.showDiff {
			m.scrollDiffBy(pageStep)
		}
	case "pgup":
		if m.showDiff {
			m.scrollDiffBy(-pageStep)
		}
	}
}

func (m *Model) handleStashPanelKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "a":
		m.applySelectedStash()
	case "p":
		m.popSelectedStash()
	case "d":
		m.dropSelectedStash()
	case "j", "down":
		m.stashCursor = m.stashCursor.next(len(m.stashes))
	case "k", "up":
		m.stashCursor = m.stashCursor.prev(len(m.stashes))
	}
}

func (m *Model) handleBranchesPanelKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		m.switchToSelectedBranch()
	case "d":
		m.deleteSelectedBranch()
	case "n":
		m.mode = newNewBranchMode()
	case "m":
		m.mergeSelectedBranch()
	case "j", "down":
		m.branchCursor = m.branchCursor.next(len(m.branches))
	case "k", "up":
		m.branchCursor = m.branchCursor.prev(len(m.branches))
	}
}
