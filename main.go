package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cj3636/glit/internal/config"
	"github.com/cj3636/glit/internal/git"
	"github.com/cj3636/glit/internal/tui"
	gogit "github.com/go-git/go-git/v5"
	flag "github.com/spf13/pflag"
)

var (
	showVersion bool
	help        bool
)

func init() {
	flag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	flag.BoolVarP(&help, "help", "h", false, "Show help information")
	flag.Usage = usage
}

func usage() {
	fmt.Println("glit - An interactive terminal client for Git")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  glit [options]")
	fmt.Println("")
	fmt.Println("Run glit from inside a Git repository. All interaction happens")
	fmt.Println("with the keyboard inside the running session; press ? for the")
	fmt.Println("full key map.")
	fmt.Println("")
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Panels:")
	fmt.Println("  1  Status    stage, commit, amend, discard, stash")
	fmt.Println("  2  Log       browse commits, diffs, search, cherry-pick, revert")
	fmt.Println("  3  Stash     apply, pop, drop")
	fmt.Println("  4  Branches  switch, create, delete, merge")
	fmt.Println("")
	fmt.Println("Configuration is read from " + configPathHint() + " when present.")
}

func configPathHint() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "the user config directory"
	}
	return dir + "/glit/config.toml"
}

// newLogger writes Debug-level logs to the file named by GLIT_LOG.
// The TUI owns the terminal, so without that variable logging is
// discarded entirely.
func newLogger() *slog.Logger {
	path := os.Getenv("GLIT_LOG")
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v\n", path, err)
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// findRepoRoot locates the worktree root of the repository containing
// the current directory, walking up like git itself does.
func findRepoRoot() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("not a git repository (or any parent): %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("repository has no worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

func main() {
	flag.Parse()

	if help {
		usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Println("glit version 0.1.0")
		fmt.Println("An interactive terminal client for Git")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := git.NewClient(root, newLogger())

	// The initial log fetch is the one fatal gateway call: a repo
	// with no readable history has nothing to show.
	commits, err := client.Commits(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(commits) == 0 {
		fmt.Println("No commits found in the current repository.")
		os.Exit(0)
	}

	model := tui.NewModel(client, cfg, commits)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
