package git

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cj3636/glit/internal/diff"
)

// RunFunc executes one git subcommand and returns its output streams.
// The production implementation spawns the git binary; tests stub it.
type RunFunc func(args ...string) (stdout, stderr string, err error)

// Client is the repository gateway: one method per supported action,
// each running a single subcommand synchronously and handing stdout to
// the matching parser, or mapping the result to a one-line message.
type Client struct {
	run    RunFunc
	engine *diff.Engine
	root   string
	logger *slog.Logger
}

// NewClient builds a gateway for the repository rooted at root.
// A nil logger discards all output.
func NewClient(root string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{
		engine: diff.NewEngine(),
		root:   root,
		logger: logger,
	}
	c.run = c.execGit
	return c
}

// NewClientWithRunner builds a gateway backed by a custom runner.
func NewClientWithRunner(run RunFunc, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{run: run, engine: diff.NewEngine(), logger: logger}
}

func (c *Client) execGit(args ...string) (string, string, error) {
	full := append([]string{"-C", c.root}, args...)
	cmd := exec.Command("git", full...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// git runs one subcommand and normalizes failures into a single error
// carrying the subprocess's error stream.
func (c *Client) git(args ...string) (string, error) {
	start := time.Now()
	stdout, stderr, err := c.run(args...)
	c.logger.Debug("git", "args", args, "duration", time.Since(start), "err", err)

	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = strings.TrimSpace(stdout)
		}
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], detail)
	}
	return stdout, nil
}

// Commits fetches the decorated log graph, optionally filtered.
func (c *Client) Commits(filter *SearchFilter) ([]Commit, error) {
	args := []string{"log", "--graph", "--oneline", "--all", "--decorate"}
	if filter != nil {
		switch filter.Kind {
		case SearchAuthor:
			args = append(args, "--author="+filter.Query)
		default:
			args = append(args, "--grep="+filter.Query)
		}
	}

	out, err := c.git(args...)
	if err != nil {
		return nil, err
	}
	return ParseLog(out), nil
}

// CommitDiff fetches the full diff of one commit.
func (c *Client) CommitDiff(hash string) (CommitDiff, error) {
	out, err := c.git("show", "--color=never", hash)
	if err != nil {
		return CommitDiff{}, err
	}
	return ParseCommitDiff(out), nil
}

// Status fetches the working-tree status.
func (c *Client) Status() ([]StatusFile, error) {
	out, err := c.git("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// Stashes fetches the stash stack.
func (c *Client) Stashes() ([]StashEntry, error) {
	out, err := c.git("stash", "list")
	if err != nil {
		return nil, err
	}
	return ParseStashList(out), nil
}

// Branches fetches local and remote branches, local first.
func (c *Client) Branches() ([]Branch, error) {
	local, err := c.git("branch", "-vv")
	if err != nil {
		return nil, err
	}
	remote, err := c.git("branch", "-r", "-v")
	if err != nil {
		return nil, err
	}
	return ParseBranches(local, remote), nil
}

// FileDiff fetches the raw diff text of one working-tree file.
func (c *Client) FileDiff(path string, staged bool) (string, error) {
	if staged {
		return c.git("diff", "--cached", "--", path)
	}
	return c.git("diff", "--", path)
}

// UntrackedPreview renders an all-added pseudo-diff for a file git
// does not track yet, so the diff pane is not empty for it.
func (c *Client) UntrackedPreview(path string) (string, error) {
	data, err := os.ReadFile(c.repoPath(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return c.engine.Unified(nil, lines), nil
}

func (c *Client) repoPath(path string) string {
	if c.root == "" {
		return path
	}
	return c.root + string(os.PathSeparator) + path
}

// LastCommitMessage returns the subject of HEAD, used to prefill the
// amend prompt.
func (c *Client) LastCommitMessage() (string, error) {
	out, err := c.git("log", "-1", "--pretty=%s")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) Stage(path string) (string, error) {
	if _, err := c.git("add", "--", path); err != nil {
		return "", err
	}
	return "Staged " + path, nil
}

func (c *Client) Unstage(path string) (string, error) {
	if _, err := c.git("reset", "HEAD", "--", path); err != nil {
		return "", err
	}
	return "Unstaged " + path, nil
}

func (c *Client) StageAll() (string, error) {
	if _, err := c.git("add", "."); err != nil {
		return "", err
	}
	return "Staged all changes", nil
}

func (c *Client) UnstageAll() (string, error) {
	if _, err := c.git("reset", "HEAD"); err != nil {
		return "", err
	}
	return "Unstaged all changes", nil
}

func (c *Client) Commit(message string) (string, error) {
	if _, err := c.git("commit", "-m", message); err != nil {
		return "", err
	}
	return "Committed changes", nil
}

func (c *Client) CommitAmend(message string) (string, error) {
	if _, err := c.git("commit", "--amend", "-m", message); err != nil {
		return "", err
	}
	return "Amended last commit", nil
}

func (c *Client) Discard(path string) (string, error) {
	if _, err := c.git("checkout", "--", path); err != nil {
		return "", err
	}
	return "Discarded changes in " + path, nil
}

// CreateStash pushes a new stash, optionally with a message and
// optionally including untracked files.
func (c *Client) CreateStash(message string, untracked bool) (string, error) {
	args := []string{"stash", "push"}
	if untracked {
		args = append(args, "-u")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	if _, err := c.git(args...); err != nil {
		return "", err
	}
	return "Created stash", nil
}

func (c *Client) ApplyStash(index int) (string, error) {
	ref := StashRef(index)
	if _, err := c.git("stash", "apply", ref); err != nil {
		return "", err
	}
	return "Applied " + ref, nil
}

func (c *Client) PopStash(index int) (string, error) {
	ref := StashRef(index)
	if _, err := c.git("stash", "pop", ref); err != nil {
		return "", err
	}
	return "Popped " + ref, nil
}

func (c *Client) DropStash(index int) (string, error) {
	ref := StashRef(index)
	if _, err := c.git("stash", "drop", ref); err != nil {
		return "", err
	}
	return "Dropped " + ref, nil
}

// CreateBranchAt creates a branch pointing at a commit without
// switching to it.
func (c *Client) CreateBranchAt(name, hash string) (string, error) {
	if _, err := c.git("branch", name, hash); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created branch '%s' at %s", name, hash), nil
}

// CreateBranch creates a branch at HEAD and switches to it.
func (c *Client) CreateBranch(name string) (string, error) {
	if _, err := c.git("checkout", "-b", name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created and switched to branch '%s'", name), nil
}

func (c *Client) SwitchBranch(name string) (string, error) {
	if _, err := c.git("checkout", name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to branch '%s'", name), nil
}

func (c *Client) DeleteBranch(name string, force bool) (string, error) {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := c.git("branch", flag, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted branch '%s'", name), nil
}

func (c *Client) MergeBranch(name string) (string, error) {
	if _, err := c.git("merge", name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Merged branch '%s'", name), nil
}

func (c *Client) CheckoutCommit(hash string) (string, error) {
	if _, err := c.git("checkout", hash); err != nil {
		return "", err
	}
	return "Checked out commit " + hash, nil
}

func (c *Client) CherryPick(hash string) (string, error) {
	if _, err := c.git("cherry-pick", hash); err != nil {
		return "", err
	}
	return "Cherry-picked commit " + hash, nil
}

func (c *Client) Revert(hash string) (string, error) {
	if _, err := c.git("revert", "--no-edit", hash); err != nil {
		return "", err
	}
	return "Reverted commit " + hash, nil
}

func (c *Client) Fetch() (string, error) {
	if _, err := c.git("fetch"); err != nil {
		return "", err
	}
	return "Fetched from remote", nil
}

func (c *Client) Push(force bool) (string, error) {
	args := []string{"push"}
	if force {
		args = append(args, "--force")
	}
	if _, err := c.git(args...); err != nil {
		return "", err
	}
	return "Pushed to remote", nil
}

func (c *Client) Pull(rebase bool) (string, error) {
	args := []string{"pull"}
	if rebase {
		args = append(args, "--rebase")
	}
	if _, err := c.git(args...); err != nil {
		return "", err
	}
	return "Pulled from remote", nil
}

// IsConflict reports whether an error from cherry-pick, revert, or
// merge looks like a merge conflict. Git does not expose a stable
// structured signal for this, so a substring match on the error text
// is the only available heuristic; it is isolated here so a future
// exit-code based check replaces one function.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "conflict")
}
