package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cj3636/glit/internal/git"
)

// View renders the UI: tab bar, active panel (or tree view), any open
// prompt, the message bar, and a per-panel key hint line. The help
// overlay replaces the panel body while visible.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderTabs())

	switch {
	case m.helpVisible:
		sections = append(sections, m.renderHelpOverlay())
	case isTreeMode(m.mode):
		sections = append(sections, m.renderTreeView())
	default:
		sections = append(sections, m.renderActivePanel())
	}

	if prompt := m.renderPrompt(); prompt != "" {
		sections = append(sections, prompt)
	}
	if bar := m.renderMessageBar(); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderKeyHints())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func isTreeMode(md mode) bool {
	_, ok := md.(treeMode)
	return ok
}

func (m Model) renderTabs() string {
	labels := []struct {
		panel panel
		text  string
	}{
		{panelStatus, "[1] Status"},
		{panelLog, "[2] Log"},
		{panelStash, "[3] Stash"},
		{panelBranches, "[4] Branches"},
	}

	var tabs []string
	for _, l := range labels {
		if l.panel == m.panel {
			tabs = append(tabs, m.styles.tabActive.Render(l.text))
		} else {
			tabs = append(tabs, m.styles.tabInactive.Render(l.text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
}

func (m Model) renderActivePanel() string {
	switch m.panel {
	case panelLog:
		return m.renderLogPanel()
	case panelStash:
		return m.renderStashPanel()
	case panelBranches:
		return m.renderBranchesPanel()
	default:
		return m.renderStatusPanel()
	}
}

// contentHeight is the number of body lines available below the tab
// bar and above the message/hint lines.
func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

// window clips lines to the scroll position; the scroll counter is
// unbounded above, so clamp the start to the available content.
func (m Model) window(lines []string, scroll int) []string {
	h := m.contentHeight() - 1 // minus the panel title
	if scroll >= len(lines) {
		scroll = max(0, len(lines)-1)
	}
	end := min(scroll+h, len(lines))
	return lines[scroll:end]
}

// windowAround clips lines so the cursor row stays visible, shifting
// the window start once the cursor moves past the last visible row.
func (m Model) windowAround(lines []string, cursor selection) []string {
	h := m.contentHeight() - 1
	start := 0
	if int(cursor) >= h {
		start = int(cursor) - h + 1
	}
	if start >= len(lines) {
		start = max(0, len(lines)-1)
	}
	end := min(start+h, len(lines))
	return lines[start:end]
}

func (m Model) renderStatusPanel() string {
	if m.statusShowDiff {
		file, _ := selectedFile(m.statusCursor, m.statusFiles)
		title := m.styles.title.Render(fmt.Sprintf(" Diff: %s ", file.Path))
		body := m.renderDiffText(m.statusDiff, m.statusDiffScroll)
		return lipgloss.JoinVertical(lipgloss.Left, title, body)
	}

	title := m.styles.title.Render(fmt.Sprintf(" Status (%d files) ", len(m.statusFiles)))

	rows := statusRows(m.statusFiles)
	if len(rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.styles.help.Render("Working tree clean"))
	}

	var lines []string
	for i, row := range rows {
		if row.isHeader() {
			lines = append(lines, m.styles.header.Render(row.Header))
			continue
		}
		file := m.statusFiles[row.FileIndex]
		line := fmt.Sprintf("  %s %s", file.Status.Code(), file.Path)
		if selection(i) == m.statusCursor {
			line = m.styles.selected.Render("> " + line[2:])
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title,
		strings.Join(m.windowAround(lines, m.statusCursor), "\n"))
}

func (m Model) renderLogPanel() string {
	title := fmt.Sprintf(" Git Log (%d commits) ", len(m.commits))
	if m.activeFilter != nil {
		kind := "grep"
		if m.activeFilter.Kind == git.SearchAuthor {
			kind = "author"
		}
		title = fmt.Sprintf(" Git Log (%d commits) [%s: %s] ", len(m.commits), kind, m.activeFilter.Query)
	}
	header := m.styles.title.Render(title)

	if m.showDiff {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderCommitDiff())
	}

	if len(m.commits) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			m.styles.help.Render("No commits match the current filter"))
	}

	var lines []string
	for i, commit := range m.commits {
		line := m.styles.graph.Render(commit.Graph) +
			m.styles.hash.Render(commit.Hash) + " " +
			m.renderDecorations(commit.Decorations) +
			commit.Message
		if selection(i) == m.logCursor {
			line = m.styles.selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header,
		strings.Join(m.windowAround(lines, m.logCursor), "\n"))
}

func (m Model) renderDecorations(decorations []git.Decoration) string {
	if len(decorations) == 0 {
		return ""
	}

	var pills []string
	for _, d := range decorations {
		switch d.Kind {
		case git.DecorationHead:
			pills = append(pills, m.styles.head.Render("HEAD"))
		case git.DecorationRemoteBranch:
			pills = append(pills, m.styles.remote.Render(d.Name))
		case git.DecorationTag:
			pills = append(pills, m.styles.tag.Render(d.Name))
		default:
			pills = append(pills, m.styles.branch.Render(d.Name))
		}
	}
	return "(" + strings.Join(pills, ", ") + ") "
}

// renderCommitDiff shows the open commit diff: a file cycler header
// and the selected file's hunks.
func (m Model) renderCommitDiff() string {
	if m.currentDiff == nil {
		return ""
	}

	file, ok := m.selectedDiffFile()
	if !ok {
		return ""
	}

	nav := m.styles.header.Render(fmt.Sprintf("File %d/%d: %s",
		int(m.fileCursor)+1, len(m.currentDiff.Files), file.Filename))
	return lipgloss.JoinVertical(lipgloss.Left, nav,
		m.renderDiffText(file.Content, m.diffScroll))
}

// renderDiffText colors raw hunk text by line prefix and applies the
// scroll window.
func (m Model) renderDiffText(content string, scroll int) string {
	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	var lines []string
	for _, line := range raw {
		switch {
		case strings.HasPrefix(line, "@@"):
			lines = append(lines, m.styles.hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			lines = append(lines, m.styles.added.Render(line))
		case strings.HasPrefix(line, "-"):
			lines = append(lines, m.styles.removed.Render(line))
		default:
			lines = append(lines, m.styles.context.Render(line))
		}
	}

	return strings.Join(m.window(lines, scroll), "\n")
}

func (m Model) renderStashPanel() string {
	title := m.styles.title.Render(fmt.Sprintf(" Stashes (%d) ", len(m.stashes)))

	if len(m.stashes) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.styles.help.Render("No stashes"))
	}

	var lines []string
	for i, stash := range m.stashes {
		line := fmt.Sprintf("  %s [%s] %s", git.StashRef(stash.Index), stash.Branch, stash.Message)
		if selection(i) == m.stashCursor {
			line = m.styles.selected.Render("> " + line[2:])
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title,
		strings.Join(m.windowAround(lines, m.stashCursor), "\n"))
}

func (m Model) renderBranchesPanel() string {
	title := m.styles.title.Render(fmt.Sprintf(" Branches (%d) ", len(m.branches)))

	if len(m.branches) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.styles.help.Render("No branches"))
	}

	var lines []string
	for i, branch := range m.branches {
		marker := " "
		if branch.IsCurrent {
			marker = "*"
		}
		name := m.styles.branch.Render(branch.Name)
		if branch.IsRemote {
			name = m.styles.remote.Render(branch.Name)
		}
		line := fmt.Sprintf("  %s %s %s %s", marker, name,
			m.styles.hash.Render(branch.CommitHash), branch.CommitMessage)
		if selection(i) == m.branchCursor {
			line = m.styles.selected.Render("> " + line[2:])
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title,
		strings.Join(m.windowAround(lines, m.branchCursor), "\n"))
}

// renderTreeView shows either the file list of the fetched commit
// diff or the selected file's hunks, depending on the sub-view.
func (m Model) renderTreeView() string {
	if m.currentDiff == nil {
		return ""
	}

	md, _ := m.mode.(treeMode)

	if md.fileSelected {
		file, ok := m.selectedDiffFile()
		if !ok {
			return ""
		}
		title := m.styles.title.Render(fmt.Sprintf(" %s ", file.Filename))
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.renderDiffText(file.Content, m.diffScroll))
	}

	title := m.styles.title.Render(fmt.Sprintf(" Files (%d) ", len(m.currentDiff.Files)))
	var lines []string
	for i, file := range m.currentDiff.Files {
		line := "  " + file.Filename
		if selection(i) == m.fileCursor {
			line = m.styles.selected.Render("> " + file.Filename)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title,
		strings.Join(m.windowAround(lines, m.fileCursor), "\n"))
}

func (m Model) renderPrompt() string {
	var label string
	var input string

	switch md := m.mode.(type) {
	case searchMode:
		label = "Search"
		input = md.input.View()
	case branchNameMode:
		label = fmt.Sprintf("Branch from %s", md.hash)
		input = md.input.View()
	case commitMessageMode:
		label = "Commit message"
		if md.amend {
			label = "Amend commit message"
		}
		input = md.input.View()
	case stashMessageMode:
		label = "Stash message"
		input = md.input.View()
	case newBranchMode:
		label = "New branch"
		input = md.input.View()
	default:
		return ""
	}

	return m.styles.prompt.Render(m.styles.header.Render(label+": ") + input)
}

func (m Model) renderMessageBar() string {
	if m.message == "" {
		return ""
	}
	switch m.messageKind {
	case messageError:
		return m.styles.errorMsg.Render(m.message)
	case messageInfo:
		return m.styles.info.Render(m.message)
	default:
		return m.styles.success.Render(m.message)
	}
}

func (m Model) renderKeyHints() string {
	if m.helpVisible {
		return m.styles.help.Render("?/esc close help")
	}
	if isTreeMode(m.mode) {
		return m.styles.help.Render("j/k navigate  enter open/close file  esc back  t/q exit  ? help")
	}
	if _, ok := m.mode.(normalMode); !ok {
		return m.styles.help.Render("enter confirm  esc cancel")
	}

	switch m.panel {
	case panelLog:
		return m.styles.help.Render("j/k move  enter diff  t tree  / search  y copy  c checkout  b branch  p pick  r revert  f fetch  P push  U pull  ? help  q quit")
	case panelStash:
		return m.styles.help.Render("j/k move  a apply  p pop  d drop  ? help  q quit")
	case panelBranches:
		return m.styles.help.Render("j/k move  enter switch  n new  d delete  m merge  ? help  q quit")
	default:
		return m.styles.help.Render("j/k move  space stage/unstage  a all  u none  c commit  A amend  x discard  s stash  enter diff  ? help  q quit")
	}
}

func (m Model) renderHelpOverlay() string {
	text := []string{
		m.styles.header.Render("Global"),
		"  1-4        switch panel        ?          toggle help",
		"  q          close diff / quit   esc        clear message/filter, quit",
		"",
		m.styles.header.Render("Status panel"),
		"  j/k        move                space      stage/unstage file",
		"  a          stage all           u          unstage all",
		"  c          commit              A          amend last commit",
		"  x          discard unstaged    s          create stash",
		"  enter      toggle file diff    pgup/pgdn  scroll diff",
		"",
		m.styles.header.Render("Log panel"),
		"  j/k        move                enter      toggle commit diff",
		"  h/l        cycle diff files    t          tree view",
		"  /          search (@ = author) y          copy hash",
		"  Y          copy file diff      E          export diff",
		"  c          checkout commit     b          branch from commit",
		"  p          cherry-pick         r          revert",
		"  f          fetch               P/U        push / pull",
		"",
		m.styles.header.Render("Stash panel"),
		"  a          apply               p          pop",
		"  d          drop",
		"",
		m.styles.header.Render("Branches panel"),
		"  enter      switch              n          new branch",
		"  d          delete              m          merge",
	}

	return m.styles.modal.Render(strings.Join(text, "\n"))
}
