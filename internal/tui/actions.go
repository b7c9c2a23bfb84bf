package tui

import (
	"fmt"
	"os"

	"github.com/cj3636/glit/internal/export"
	"github.com/cj3636/glit/internal/git"
)

// Every mutating action follows one pattern: call the gateway, map
// success to a one-line message and refresh the affected collections,
// map failure to an Error message and leave everything else alone.
// Cherry-pick, revert, and merge downgrade conflict-shaped failures
// to Info, since a conflict is a user-resolvable condition.

func (m *Model) toggleStage() {
	file, ok := selectedFile(m.statusCursor, m.statusFiles)
	if !ok {
		return
	}

	var msg string
	var err error
	if file.Staged {
		msg, err = m.svc.Unstage(file.Path)
	} else {
		msg, err = m.svc.Stage(file.Path)
	}

	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

func (m *Model) stageAll() {
	msg, err := m.svc.StageAll()
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

func (m *Model) unstageAll() {
	msg, err := m.svc.UnstageAll()
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

func (m *Model) executeCommit(message string, amend bool) {
	if message == "" {
		m.setMessage("Commit message cannot be empty", messageError)
		return
	}

	var msg string
	var err error
	if amend {
		msg, err = m.svc.CommitAmend(message)
	} else {
		msg, err = m.svc.Commit(message)
	}

	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

// enterAmendMode prefills the prompt with HEAD's subject; if that
// fetch fails there is nothing to amend against, so stay in Normal.
func (m *Model) enterAmendMode() {
	last, err := m.svc.LastCommitMessage()
	if err != nil {
		m.setError(err)
		return
	}
	m.mode = newCommitMessageMode(true, last)
}

func (m *Model) discardSelected() {
	file, ok := selectedFile(m.statusCursor, m.statusFiles)
	if !ok {
		return
	}
	if file.Staged {
		m.setMessage("Cannot discard staged file. Unstage it first.", messageError)
		return
	}

	msg, err := m.svc.Discard(file.Path)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

// toggleStatusDiff shows or hides the raw diff of the selected status
// entry. Untracked files have no blob for git to diff, so they get a
// synthesized all-added preview instead.
func (m *Model) toggleStatusDiff() {
	if m.statusShowDiff {
		m.statusShowDiff = false
		m.statusDiff = ""
		m.statusDiffScroll = 0
		return
	}

	file, ok := selectedFile(m.statusCursor, m.statusFiles)
	if !ok {
		return
	}

	var diff string
	var err error
	if file.Status == git.StatusUntracked {
		diff, err = m.svc.UntrackedPreview(file.Path)
	} else {
		diff, err = m.svc.FileDiff(file.Path, file.Staged)
	}
	if err != nil {
		m.setMessage("Failed to load diff: "+err.Error(), messageError)
		return
	}

	m.statusDiff = diff
	m.statusDiffScroll = 0
	m.statusShowDiff = true
}

func (m *Model) executeCreateStash(message string) {
	msg, err := m.svc.CreateStash(message, m.cfg.StashUntracked)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
	m.refreshStashes()
}

func (m *Model) applySelectedStash() {
	stash, ok := m.selectedStash()
	if !ok {
		return
	}
	msg, err := m.svc.ApplyStash(stash.Index)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
}

func (m *Model) popSelectedStash() {
	stash, ok := m.selectedStash()
	if !ok {
		return
	}
	msg, err := m.svc.PopStash(stash.Index)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
	m.refreshStashes()
}

func (m *Model) dropSelectedStash() {
	stash, ok := m.selectedStash()
	if !ok {
		return
	}
	msg, err := m.svc.DropStash(stash.Index)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStashes()
}

func (m *Model) createBranchAt(name, hash string) {
	if name == "" {
		m.setMessage("Branch name cannot be empty", messageError)
		return
	}
	msg, err := m.svc.CreateBranchAt(name, hash)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
}

func (m *Model) executeCreateNewBranch(name string) {
	if name == "" {
		m.setMessage("Branch name cannot be empty", messageError)
		return
	}
	msg, err := m.svc.CreateBranch(name)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshBranches()
}

func (m *Model) switchToSelectedBranch() {
	branch, ok := m.selectedBranch()
	if !ok {
		return
	}
	if branch.IsCurrent {
		m.setMessage("Already on this branch", messageInfo)
		return
	}
	msg, err := m.svc.SwitchBranch(branch.Name)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshBranches()
}

func (m *Model) deleteSelectedBranch() {
	branch, ok := m.selectedBranch()
	if !ok {
		return
	}
	if branch.IsCurrent {
		m.setMessage("Cannot delete current branch", messageError)
		return
	}
	if branch.IsRemote {
		m.setMessage("Cannot delete remote branches from this view", messageError)
		return
	}
	msg, err := m.svc.DeleteBranch(branch.Name, false)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshBranches()
}

func (m *Model) mergeSelectedBranch() {
	branch, ok := m.selectedBranch()
	if !ok {
		return
	}
	if branch.IsCurrent {
		m.setMessage("Cannot merge a branch into itself", messageError)
		return
	}
	msg, err := m.svc.MergeBranch(branch.Name)
	if err != nil {
		if git.IsConflict(err) {
			m.setMessage("Merge has conflicts. Resolve them and commit the result.", messageInfo)
		} else {
			m.setError(err)
		}
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshBranches()
	m.refreshStatus()
}

func (m *Model) checkoutSelectedCommit() {
	commit, ok := m.selectedCommit()
	if !ok {
		return
	}
	msg, err := m.svc.CheckoutCommit(commit.Hash)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
}

func (m *Model) cherryPickSelected() {
	commit, ok := m.selectedCommit()
	if !ok {
		return
	}
	msg, err := m.svc.CherryPick(commit.Hash)
	if err != nil {
		if git.IsConflict(err) {
			m.setMessage("Cherry-pick has conflicts. Resolve them and commit the result.", messageInfo)
		} else {
			m.setError(err)
		}
		return
	}
	m.setMessage(msg, messageInfo)
}

func (m *Model) revertSelected() {
	commit, ok := m.selectedCommit()
	if !ok {
		return
	}
	msg, err := m.svc.Revert(commit.Hash)
	if err != nil {
		if git.IsConflict(err) {
			m.setMessage("Revert has conflicts. Resolve them and commit the result.", messageInfo)
		} else {
			m.setError(err)
		}
		return
	}
	m.setMessage(msg, messageInfo)
}

func (m *Model) fetchRemote() {
	msg, err := m.svc.Fetch()
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshBranches()
}

func (m *Model) pushRemote() {
	msg, err := m.svc.Push(false)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
}

func (m *Model) pullRemote() {
	msg, err := m.svc.Pull(false)
	if err != nil {
		m.setError(err)
		return
	}
	m.setMessage(msg, messageSuccess)
	m.refreshStatus()
	m.refreshBranches()
}

// copyCommitHash puts the selected hash on the clipboard via OSC52.
func (m *Model) copyCommitHash() {
	commit, ok := m.selectedCommit()
	if !ok {
		return
	}
	if err := export.CopyToClipboard(commit.Hash, m.clipboard); err != nil {
		m.setMessage("Failed to copy to clipboard: "+err.Error(), messageError)
		return
	}
	m.setMessage("Copied hash: "+commit.Hash, messageSuccess)
}

// copyFileDiff copies the selected file of the open commit diff as a
// Markdown code block.
func (m *Model) copyFileDiff() {
	if !m.showDiff {
		return
	}
	file, ok := m.selectedDiffFile()
	if !ok {
		return
	}
	if err := export.CopyToClipboard(export.RenderFileMarkdown(file), m.clipboard); err != nil {
		m.setMessage("Failed to copy to clipboard: "+err.Error(), messageError)
		return
	}
	m.setMessage("Copied diff for "+file.Filename, messageSuccess)
}

// exportCommitDiff writes the open commit diff to a file in the
// working directory, named after the commit and the configured format.
func (m *Model) exportCommitDiff() {
	if !m.showDiff || m.currentDiff == nil {
		return
	}
	commit, ok := m.selectedCommit()
	if !ok {
		return
	}

	format, err := export.ParseFormat(m.cfg.ExportFormat)
	if err != nil {
		m.setError(err)
		return
	}
	rendered, err := export.RenderCommit(*m.currentDiff, format, commit.Hash)
	if err != nil {
		m.setError(err)
		return
	}

	path := fmt.Sprintf("%s.diff.%s", commit.Hash, format.Extension())
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		m.setMessage("Failed to write export: "+err.Error(), messageError)
		return
	}
	m.setMessage("Diff saved to "+path, messageSuccess)
}
