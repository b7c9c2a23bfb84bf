package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// mode is the transient interaction layer above the panels. Exactly
// one mode is active at a time; each variant carries only the data it
// needs, so the input modes cannot get out of sync the way a pile of
// boolean flags can. The help overlay is not a mode: it layers above
// whichever mode is active.
type mode interface {
	modeName() string
}

type normalMode struct{}

func (normalMode) modeName() string { return "normal" }

// searchMode holds the log filter query being typed. A leading @
// makes it an author filter on confirm.
type searchMode struct {
	input textinput.Model
}

func (searchMode) modeName() string { return "search" }

func newSearchMode() searchMode {
	return searchMode{input: newPromptInput("message, or @author")}
}

// branchNameMode names a branch to create at a commit. The source
// hash is captured at entry time so a moving log selection cannot
// change what the branch points at.
type branchNameMode struct {
	input textinput.Model
	hash  string
}

func (branchNameMode) modeName() string { return "branch-name" }

func newBranchNameMode(hash string) branchNameMode {
	return branchNameMode{input: newPromptInput("branch name"), hash: hash}
}

// commitMessageMode collects a commit message; amend selects
// `commit --amend` on confirm.
type commitMessageMode struct {
	input textinput.Model
	amend bool
}

func (commitMessageMode) modeName() string { return "commit-message" }

func newCommitMessageMode(amend bool, prefill string) commitMessageMode {
	input := newPromptInput("commit message")
	if prefill != "" {
		input.SetValue(prefill)
		input.CursorEnd()
	}
	return commitMessageMode{input: input, amend: amend}
}

// stashMessageMode collects an optional stash message; an empty
// confirm stashes without one.
type stashMessageMode struct {
	input textinput.Model
}

func (stashMessageMode) modeName() string { return "stash-message" }

func newStashMessageMode() stashMessageMode {
	return stashMessageMode{input: newPromptInput("stash message (optional)")}
}

// newBranchMode names a branch to create at HEAD and switch to.
type newBranchMode struct {
	input textinput.Model
}

func (newBranchMode) modeName() string { return "new-branch" }

func newNewBranchMode() newBranchMode {
	return newBranchMode{input: newPromptInput("new branch name")}
}

// treeMode is the richer diff browser over one fetched commit diff.
// fileSelected toggles between the file-list and file-diff sub-views.
type treeMode struct {
	fileSelected bool
}

func (treeMode) modeName() string { return "tree" }

func newPromptInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 200
	input.Focus()
	return input
}
