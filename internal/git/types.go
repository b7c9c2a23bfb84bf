package git

// Commit is one entry of the log graph, in the order git emitted it.
type Commit struct {
	Graph       string
	Hash        string
	Message     string
	Decorations []Decoration
}

// DecorationKind classifies a ref annotation on a commit.
type DecorationKind int

const (
	DecorationHead DecorationKind = iota
	DecorationBranch
	DecorationRemoteBranch
	DecorationTag
)

// Decoration is a ref pointing at a commit. Name is empty for HEAD.
type Decoration struct {
	Kind DecorationKind
	Name string
}

// FileDiff holds one file's hunk content within a commit diff.
// Content contains only hunk headers and +/-/context lines; the
// diff --git / index / --- / +++ metadata is stripped at parse time.
type FileDiff struct {
	Filename string
	Content  string
}

// NoChangesFilename names the sentinel FileDiff emitted when a commit
// touched no files, so CommitDiff.Files is never empty.
const NoChangesFilename = "(no changes)"

// CommitDiff is the full diff of one commit.
type CommitDiff struct {
	Files []FileDiff
}

// FileStatus is the working-tree state of a status entry.
type FileStatus int

const (
	StatusModified FileStatus = iota
	StatusAdded
	StatusDeleted
	StatusRenamed
	StatusUntracked
)

// Code returns the one-letter indicator shown in the status panel.
func (s FileStatus) Code() string {
	switch s {
	case StatusAdded:
		return "A"
	case StatusDeleted:
		return "D"
	case StatusRenamed:
		return "R"
	case StatusUntracked:
		return "?"
	default:
		return "M"
	}
}

// StatusFile is one working-tree entry. A path may appear twice,
// once staged and once unstaged; those are independent entries.
type StatusFile struct {
	Path   string
	Status FileStatus
	Staged bool
}

// StashEntry is one stash slot. Index is the position in the stash
// stack at parse time (0 = most recent) and goes stale the moment
// the stack mutates.
type StashEntry struct {
	Index   int
	Branch  string
	Message string
}

// Branch is one local or remote ref from the verbose branch listing.
type Branch struct {
	Name          string
	IsCurrent     bool
	IsRemote      bool
	CommitHash    string
	CommitMessage string
}

// SearchKind selects the log filter field.
type SearchKind int

const (
	SearchMessage SearchKind = iota
	SearchAuthor
)

// SearchFilter is an active log filter. A nil *SearchFilter means no
// filter; Query is always non-empty on a constructed filter.
type SearchFilter struct {
	Kind  SearchKind
	Query string
}

// MessageFilter builds a message filter, or nil for empty query text.
func MessageFilter(query string) *SearchFilter {
	if query == "" {
		return nil
	}
	return &SearchFilter{Kind: SearchMessage, Query: query}
}

// AuthorFilter builds an author filter, or nil for empty query text.
func AuthorFilter(query string) *SearchFilter {
	if query == "" {
		return nil
	}
	return &SearchFilter{Kind: SearchAuthor, Query: query}
}
