package tui

import "github.com/cj3636/glit/internal/git"

// selection is a cursor over one list. -1 means nothing selected.
// Movement wraps circularly and is a no-op on an empty list.
type selection int

const noSelection selection = -1

// firstSelection selects index 0, or nothing for an empty list.
func firstSelection(length int) selection {
	if length == 0 {
		return noSelection
	}
	return 0
}

func (s selection) next(length int) selection {
	if length == 0 {
		return s
	}
	if s < 0 || int(s) >= length-1 {
		return 0
	}
	return s + 1
}

func (s selection) prev(length int) selection {
	if length == 0 {
		return s
	}
	if s < 0 {
		return 0
	}
	if s == 0 {
		return selection(length - 1)
	}
	return s - 1
}

func (s selection) valid(length int) bool {
	return s >= 0 && int(s) < length
}

// statusRow is one visible row of the status panel: either a synthetic
// group header or a file, carrying the index into the original
// collection so actions address the right entry.
type statusRow struct {
	Header    string
	FileIndex int
}

func (r statusRow) isHeader() bool { return r.Header != "" }

// statusRows partitions the status files into the staged and unstaged
// groups, each under its header when non-empty. It is recomputed on
// every read: group membership changes after each stage/unstage call,
// so a cached mapping would go stale immediately.
func statusRows(files []git.StatusFile) []statusRow {
	var staged, unstaged []statusRow
	for i, f := range files {
		row := statusRow{FileIndex: i}
		if f.Staged {
			staged = append(staged, row)
		} else {
			unstaged = append(unstaged, row)
		}
	}

	var rows []statusRow
	if len(staged) > 0 {
		rows = append(rows, statusRow{Header: "Staged Changes:", FileIndex: -1})
		rows = append(rows, staged...)
	}
	if len(unstaged) > 0 {
		rows = append(rows, statusRow{Header: "Unstaged Changes:", FileIndex: -1})
		rows = append(rows, unstaged...)
	}
	return rows
}

// firstFileRow selects the first non-header row, or nothing.
func firstFileRow(rows []statusRow) selection {
	for i, row := range rows {
		if !row.isHeader() {
			return selection(i)
		}
	}
	return noSelection
}

// nextFileRow advances the cursor circularly, skipping header rows.
func nextFileRow(s selection, rows []statusRow) selection {
	return seekFileRow(s, rows, selection.next)
}

// prevFileRow moves the cursor back circularly, skipping header rows.
func prevFileRow(s selection, rows []statusRow) selection {
	return seekFileRow(s, rows, selection.prev)
}

func seekFileRow(s selection, rows []statusRow, step func(selection, int) selection) selection {
	if len(rows) == 0 {
		return s
	}
	cur := s
	for i := 0; i < len(rows); i++ {
		cur = step(cur, len(rows))
		if !rows[cur].isHeader() {
			return cur
		}
	}
	// All rows are headers; cannot happen with a non-empty partition.
	return s
}

// selectedFile translates the cursor into the file it addresses, if
// it addresses one.
func selectedFile(s selection, files []git.StatusFile) (git.StatusFile, bool) {
	rows := statusRows(files)
	if !s.valid(len(rows)) {
		return git.StatusFile{}, false
	}
	row := rows[s]
	if row.isHeader() {
		return git.StatusFile{}, false
	}
	return files[row.FileIndex], true
}
