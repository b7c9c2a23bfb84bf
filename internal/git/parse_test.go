package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogSimple(t *testing.T) {
	t.Parallel()

	commits := ParseLog("* abc1234 Initial commit\n* def5678 Second commit")

	require.Len(t, commits, 2)
	assert.Equal(t, "abc1234", commits[0].Hash)
	assert.Equal(t, "Initial commit", commits[0].Message)
	assert.Empty(t, commits[0].Decorations)
	assert.Equal(t, "def5678", commits[1].Hash)
	assert.Equal(t, "Second commit", commits[1].Message)
	assert.Empty(t, commits[1].Decorations)
}

func TestParseLogGraphLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"*   abc1234 Merge branch 'feature'",
		"|\\ ",
		"| * def5678 Feature work",
		"|/ ",
		"* 9876543 Base",
	}, "\n")

	commits := ParseLog(input)

	require.Len(t, commits, 3)
	assert.Equal(t, "abc1234", commits[0].Hash)
	assert.Equal(t, "*   ", commits[0].Graph)
	assert.Equal(t, "def5678", commits[1].Hash)
	assert.Equal(t, "| * ", commits[1].Graph)
	assert.Equal(t, "9876543", commits[2].Hash)
}

func TestParseLogCountsHexLines(t *testing.T) {
	t.Parallel()

	input := "* abc1234 one\n|\\ \n\n| * def5678 two\n| | \n* 1111111 three"
	commits := ParseLog(input)

	// One commit per non-empty line containing a hex digit.
	assert.Len(t, commits, 3)
}

func TestParseLogDecorations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Decoration
		msg  string
	}{
		{
			name: "head with local branch",
			line: "* abc1234 (HEAD -> main) Initial",
			want: []Decoration{
				{Kind: DecorationHead},
				{Kind: DecorationBranch, Name: "main"},
			},
			msg: "Initial",
		},
		{
			name: "head with remote branch",
			line: "* abc1234 (HEAD -> origin/main) Initial",
			want: []Decoration{
				{Kind: DecorationHead},
				{Kind: DecorationRemoteBranch, Name: "origin/main"},
			},
			msg: "Initial",
		},
		{
			name: "detached head",
			line: "* abc1234 (HEAD) Detached",
			want: []Decoration{{Kind: DecorationHead}},
			msg:  "Detached",
		},
		{
			name: "tag and branches",
			line: "* abc1234 (tag: v1.0.0, origin/main, main) Release",
			want: []Decoration{
				{Kind: DecorationTag, Name: "v1.0.0"},
				{Kind: DecorationRemoteBranch, Name: "origin/main"},
				{Kind: DecorationBranch, Name: "main"},
			},
			msg: "Release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			commits := ParseLog(tt.line)
			require.Len(t, commits, 1)
			assert.Equal(t, tt.want, commits[0].Decorations)
			assert.Equal(t, tt.msg, commits[0].Message)
		})
	}
}

func TestParseLogMessageWithParenthesesIsNotDecoration(t *testing.T) {
	t.Parallel()

	commits := ParseLog("* abc1234 fix parser (again)")

	require.Len(t, commits, 1)
	// A "(" that is not the first rune of the remainder is plain message.
	assert.Empty(t, commits[0].Decorations)
	assert.Equal(t, "fix parser (again)", commits[0].Message)
}

func TestParseCommitDiffTwoFiles(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"commit abc1234",
		"Author: Someone <someone@example.com>",
		"",
		"    Change two files",
		"",
		"diff --git a/x b/x",
		"index 1111111..2222222 100644",
		"--- a/x",
		"+++ b/x",
		"@@ -1,2 +1,2 @@",
		"-old",
		"+new",
		" context",
		"diff --git a/y b/y",
		"index 3333333..4444444 100644",
		"--- a/y",
		"+++ b/y",
		"@@ -1 +1 @@",
		"-a",
		"+b",
	}, "\n")

	d := ParseCommitDiff(input)

	require.Len(t, d.Files, 2)
	assert.Equal(t, "x", d.Files[0].Filename)
	assert.Equal(t, "y", d.Files[1].Filename)

	for _, f := range d.Files {
		assert.NotContains(t, f.Content, "diff --git")
		assert.NotContains(t, f.Content, "index ")
		assert.NotContains(t, f.Content, "--- ")
		assert.NotContains(t, f.Content, "+++ ")
		assert.Contains(t, f.Content, "@@")
	}
	assert.Contains(t, d.Files[0].Content, "-old\n")
	assert.Contains(t, d.Files[0].Content, "+new\n")
	assert.Contains(t, d.Files[0].Content, " context\n")
}

func TestParseCommitDiffSentinel(t *testing.T) {
	t.Parallel()

	d := ParseCommitDiff("commit abc1234\n\n    Empty merge commit\n")

	require.Len(t, d.Files, 1)
	assert.Equal(t, NoChangesFilename, d.Files[0].Filename)
	assert.NotEmpty(t, d.Files[0].Content)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []StatusFile
	}{
		{
			name: "staged modified",
			line: "M  foo.txt",
			want: []StatusFile{{Path: "foo.txt", Status: StatusModified, Staged: true}},
		},
		{
			name: "unstaged modified",
			line: " M foo.txt",
			want: []StatusFile{{Path: "foo.txt", Status: StatusModified, Staged: false}},
		},
		{
			name: "untracked is a single entry",
			line: "?? bar.txt",
			want: []StatusFile{{Path: "bar.txt", Status: StatusUntracked, Staged: false}},
		},
		{
			name: "staged and unstaged halves",
			line: "MM both.txt",
			want: []StatusFile{
				{Path: "both.txt", Status: StatusModified, Staged: true},
				{Path: "both.txt", Status: StatusModified, Staged: false},
			},
		},
		{
			name: "staged added",
			line: "A  new.txt",
			want: []StatusFile{{Path: "new.txt", Status: StatusAdded, Staged: true}},
		},
		{
			name: "unstaged deleted",
			line: " D gone.txt",
			want: []StatusFile{{Path: "gone.txt", Status: StatusDeleted, Staged: false}},
		},
		{
			name: "staged renamed",
			line: "R  a.txt -> b.txt",
			want: []StatusFile{{Path: "a.txt -> b.txt", Status: StatusRenamed, Staged: true}},
		},
		{
			name: "unknown code falls back to modified",
			line: "U  weird.txt",
			want: []StatusFile{{Path: "weird.txt", Status: StatusModified, Staged: true}},
		},
		{
			name: "short line skipped",
			line: "M",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseStatus(tt.line))
		})
	}
}

func TestParseStashListPositionalIndex(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"stash@{0}: WIP on main: abc1234 first",
		"stash@{5}: On feature: second",
		"stash@{2}: custom descriptor: third",
	}, "\n")

	stashes := ParseStashList(input)

	require.Len(t, stashes, 3)
	// Position wins over the literal index in the text.
	for i, s := range stashes {
		assert.Equal(t, i, s.Index)
	}
	assert.Equal(t, "main", stashes[0].Branch)
	assert.Equal(t, "abc1234 first", stashes[0].Message)
	assert.Equal(t, "feature", stashes[1].Branch)
	assert.Equal(t, "second", stashes[1].Message)
	assert.Equal(t, "unknown", stashes[2].Branch)
}

func TestParseBranches(t *testing.T) {
	t.Parallel()

	local := strings.Join([]string{
		"* main    abc1234 [origin/main] latest work",
		"  feature def5678 feature work",
	}, "\n")
	remote := strings.Join([]string{
		"  origin/HEAD -> origin/main",
		"  origin/main abc1234 latest work",
	}, "\n")

	branches := ParseBranches(local, remote)

	require.Len(t, branches, 3)

	assert.Equal(t, "main", branches[0].Name)
	assert.True(t, branches[0].IsCurrent)
	assert.False(t, branches[0].IsRemote)
	assert.Equal(t, "abc1234", branches[0].CommitHash)

	assert.Equal(t, "feature", branches[1].Name)
	assert.False(t, branches[1].IsCurrent)
	assert.Equal(t, "feature work", branches[1].CommitMessage)

	assert.Equal(t, "origin/main", branches[2].Name)
	assert.True(t, branches[2].IsRemote)
	assert.False(t, branches[2].IsCurrent, "remote branches are never current")
}

func TestParseBranchesSingleCurrent(t *testing.T) {
	t.Parallel()

	branches := ParseBranches("* main abc1234 msg\n  dev def5678 msg", "")

	current := 0
	for _, b := range branches {
		if b.IsCurrent {
			current++
		}
	}
	assert.Equal(t, 1, current)
}

func TestParsersTolerateGarbage(t *testing.T) {
	t.Parallel()

	garbage := "\x00\xff not a thing\n:::\n   \n"

	assert.NotPanics(t, func() {
		ParseLog(garbage)
		ParseCommitDiff(garbage)
		ParseStatus(garbage)
		ParseStashList(garbage)
		ParseBranches(garbage, garbage)
	})
}
