package tui

import "github.com/cj3636/glit/internal/git"

// Service is the repository gateway the state machine depends on.
// *git.Client is the production implementation; tests substitute a
// fake to drive the model without spawning processes. Every call is
// synchronous and blocking, which keeps the whole application a
// single-threaded state machine with no in-flight operations.
type Service interface {
	Commits(filter *git.SearchFilter) ([]git.Commit, error)
	CommitDiff(hash string) (git.CommitDiff, error)
	Status() ([]git.StatusFile, error)
	Stashes() ([]git.StashEntry, error)
	Branches() ([]git.Branch, error)
	FileDiff(path string, staged bool) (string, error)
	UntrackedPreview(path string) (string, error)
	LastCommitMessage() (string, error)

	Stage(path string) (string, error)
	Unstage(path string) (string, error)
	StageAll() (string, error)
	UnstageAll() (string, error)
	Commit(message string) (string, error)
	CommitAmend(message string) (string, error)
	Discard(path string) (string, error)
	CreateStash(message string, untracked bool) (string, error)
	ApplyStash(index int) (string, error)
	PopStash(index int) (string, error)
	DropStash(index int) (string, error)
	CreateBranchAt(name, hash string) (string, error)
	CreateBranch(name string) (string, error)
	SwitchBranch(name string) (string, error)
	DeleteBranch(name string, force bool) (string, error)
	MergeBranch(name string) (string, error)
	CheckoutCommit(hash string) (string, error)
	CherryPick(hash string) (string, error)
	Revert(hash string) (string, error)
	Fetch() (string, error)
	Push(force bool) (string, error)
	Pull(rebase bool) (string, error)
}

var _ Service = (*git.Client)(nil)
