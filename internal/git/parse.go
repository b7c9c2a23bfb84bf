package git

import (
	"fmt"
	"strings"
)

// The parsers in this file are total: malformed lines are skipped or
// mapped to a sentinel record, never surfaced as errors. Output order
// always matches input order, which for the log encodes git's graph
// traversal order.

// ParseLog parses `git log --graph --oneline --all --decorate` output.
func ParseLog(out string) []Commit {
	var commits []Commit

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		// The hash starts at the first ASCII hex digit; everything
		// before it is graph drawing (|, *, /, \, space).
		hashStart := -1
		for i := 0; i < len(line); i++ {
			if isHexDigit(line[i]) {
				hashStart = i
				break
			}
		}
		if hashStart < 0 {
			// Pure graph line such as "|\" or "| |".
			continue
		}

		graph := line[:hashStart]
		rest := line[hashStart:]

		hash := rest
		remainder := ""
		if idx := strings.IndexByte(rest, ' '); idx >= 0 {
			hash = rest[:idx]
			remainder = rest[idx+1:]
		}

		message := remainder
		var decorations []Decoration
		trimmed := strings.TrimSpace(remainder)
		if strings.HasPrefix(trimmed, "(") {
			if end := strings.IndexByte(trimmed, ')'); end > 0 {
				decorations = parseDecorations(trimmed[1:end])
				message = strings.TrimSpace(trimmed[end+1:])
			}
		}

		commits = append(commits, Commit{
			Graph:       graph,
			Hash:        hash,
			Message:     message,
			Decorations: decorations,
		})
	}

	return commits
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// parseDecorations parses the comma-separated list between the
// parentheses of a decorated log line.
func parseDecorations(list string) []Decoration {
	var decorations []Decoration

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			// Dropped.
		case strings.HasPrefix(part, "HEAD -> "):
			decorations = append(decorations, Decoration{Kind: DecorationHead})
			decorations = append(decorations, refDecoration(strings.TrimPrefix(part, "HEAD -> ")))
		case part == "HEAD":
			decorations = append(decorations, Decoration{Kind: DecorationHead})
		case strings.HasPrefix(part, "tag: "):
			decorations = append(decorations, Decoration{Kind: DecorationTag, Name: strings.TrimPrefix(part, "tag: ")})
		default:
			decorations = append(decorations, refDecoration(part))
		}
	}

	return decorations
}

// refDecoration classifies a bare ref name: remote branches carry a slash.
func refDecoration(name string) Decoration {
	if strings.Contains(name, "/") {
		return Decoration{Kind: DecorationRemoteBranch, Name: name}
	}
	return Decoration{Kind: DecorationBranch, Name: name}
}

// ParseCommitDiff parses `git show` output into per-file hunks. The
// commit header before the first `diff --git` marker is discarded, as
// are the index/---/+++ metadata lines inside each file block.
func ParseCommitDiff(out string) CommitDiff {
	var files []FileDiff
	var current *FileDiff
	var content strings.Builder

	flush := func() {
		if current != nil {
			current.Content = content.String()
			files = append(files, *current)
			content.Reset()
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "diff --git") {
			flush()
			filename := "unknown"
			if fields := strings.Fields(line); len(fields) >= 3 {
				filename = strings.TrimPrefix(fields[2], "a/")
			}
			current = &FileDiff{Filename: filename}
			continue
		}
		if current == nil {
			// Commit header/metadata before the first file.
			continue
		}
		if strings.HasPrefix(line, "index ") ||
			strings.HasPrefix(line, "--- ") ||
			strings.HasPrefix(line, "+++ ") {
			continue
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
	flush()

	if len(files) == 0 {
		files = append(files, FileDiff{
			Filename: NoChangesFilename,
			Content:  "This commit does not modify any files.\n",
		})
	}

	return CommitDiff{Files: files}
}

// ParseStatus parses `git status --porcelain` two-column output.
// One input line yields 0, 1, or 2 entries: the staged and unstaged
// columns are decoded independently, except for `??` which yields a
// single untracked entry.
func ParseStatus(out string) []StatusFile {
	var files []StatusFile

	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}

		stagedCode := line[0]
		unstagedCode := line[1]
		path := strings.TrimSpace(line[3:])

		if stagedCode == '?' && unstagedCode == '?' {
			files = append(files, StatusFile{Path: path, Status: StatusUntracked, Staged: false})
			continue
		}

		if stagedCode != ' ' && stagedCode != '?' {
			files = append(files, StatusFile{Path: path, Status: decodeStatus(stagedCode), Staged: true})
		}
		if unstagedCode != ' ' {
			files = append(files, StatusFile{Path: path, Status: decodeStatus(unstagedCode), Staged: false})
		}
	}

	return files
}

// decodeStatus maps a porcelain column code to a FileStatus.
// Unrecognized codes fall back to Modified.
func decodeStatus(code byte) FileStatus {
	switch code {
	case 'A':
		return StatusAdded
	case 'D':
		return StatusDeleted
	case 'R':
		return StatusRenamed
	default:
		return StatusModified
	}
}

// ParseStashList parses `git stash list` output. The entry index is
// assigned by position in the output, overriding whatever literal
// number the stash ref in the text carries: positions are the only
// thing `stash apply/pop/drop` can be trusted to agree on.
func ParseStashList(out string) []StashEntry {
	var stashes []StashEntry

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		// stash@{N}: WIP on main: deadbee message
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 2 {
			continue
		}

		descriptor := strings.TrimSpace(parts[1])
		message := ""
		if len(parts) == 3 {
			message = strings.TrimSpace(parts[2])
		}

		branch := "unknown"
		if name, ok := strings.CutPrefix(descriptor, "WIP on "); ok {
			branch = name
		} else if name, ok := strings.CutPrefix(descriptor, "On "); ok {
			branch = name
		}

		stashes = append(stashes, StashEntry{
			Index:   len(stashes),
			Branch:  branch,
			Message: message,
		})
	}

	return stashes
}

// ParseBranches parses the verbose local (`branch -vv`) and remote
// (`branch -r -v`) listings and concatenates them, local first.
func ParseBranches(localOut, remoteOut string) []Branch {
	branches := parseBranchListing(localOut, false)
	return append(branches, parseBranchListing(remoteOut, true)...)
}

func parseBranchListing(out string, remote bool) []Branch {
	var branches []Branch

	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		// The remote listing carries a symbolic ref line such as
		// "origin/HEAD -> origin/main"; it is not a branch.
		if strings.Contains(line, "HEAD ->") {
			continue
		}

		current := line[0] == '*'
		fields := strings.Fields(line[2:])
		if len(fields) < 2 {
			continue
		}

		branches = append(branches, Branch{
			Name:          fields[0],
			IsCurrent:     current && !remote,
			IsRemote:      remote,
			CommitHash:    fields[1],
			CommitMessage: strings.Join(fields[2:], " "),
		})
	}

	return branches
}

// StashRef formats the stash ref for a stack position.
func StashRef(index int) string {
	return fmt.Sprintf("stash@{%d}", index)
}
