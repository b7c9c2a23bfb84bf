package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Line is a single line of a computed diff.
type Line struct {
	Type    LineType
	Content string
}

// LineType defines the type of diff line.
type LineType int

const (
	Equal LineType = iota
	Added
	Removed
)

// Engine computes line diffs between two snapshots of a file. The TUI
// uses it to synthesize a diff for files git has no blob for yet
// (untracked files), where `git diff` would print nothing.
type Engine struct{}

// NewEngine creates a new diff engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compare diffs two slices of lines.
func (e *Engine) Compare(before, after []string) []Line {
	opcodes, err := generateOpCodes(before, after)
	if err != nil {
		// Fall back to a positional diff when the matcher fails.
		return positionalDiff(before, after)
	}

	var lines []Line
	for _, op := range opcodes {
		switch op.Tag {
		case 'e':
			for i := op.I1; i < op.I2; i++ {
				lines = append(lines, Line{Type: Equal, Content: before[i]})
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				lines = append(lines, Line{Type: Removed, Content: before[i]})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				lines = append(lines, Line{Type: Added, Content: after[j]})
			}
		case 'r':
			for i := op.I1; i < op.I2; i++ {
				lines = append(lines, Line{Type: Removed, Content: before[i]})
			}
			for j := op.J1; j < op.J2; j++ {
				lines = append(lines, Line{Type: Added, Content: after[j]})
			}
		}
	}
	return lines
}

// Unified renders the diff of two snapshots as unified hunk text with
// a single hunk header, matching the shape of `git diff` body lines.
func (e *Engine) Unified(before, after []string) string {
	lines := e.Compare(before, after)

	var b strings.Builder
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", len(before), len(after))
	for _, line := range lines {
		switch line.Type {
		case Added:
			b.WriteByte('+')
		case Removed:
			b.WriteByte('-')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(line.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

func generateOpCodes(before, after []string) (opcodes []difflib.OpCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("matcher failed: %v", r)
		}
	}()

	matcher := difflib.NewMatcher(before, after)
	return matcher.GetOpCodes(), nil
}

// positionalDiff pairs lines index by index, with no move detection.
func positionalDiff(before, after []string) []Line {
	var lines []Line
	longest := max(len(before), len(after))

	for i := 0; i < longest; i++ {
		hasOld := i < len(before)
		hasNew := i < len(after)

		switch {
		case hasOld && hasNew && before[i] == after[i]:
			lines = append(lines, Line{Type: Equal, Content: before[i]})
		case hasOld && hasNew:
			lines = append(lines, Line{Type: Removed, Content: before[i]})
			lines = append(lines, Line{Type: Added, Content: after[i]})
		case hasOld:
			lines = append(lines, Line{Type: Removed, Content: before[i]})
		case hasNew:
			lines = append(lines, Line{Type: Added, Content: after[i]})
		}
	}

	return lines
}
