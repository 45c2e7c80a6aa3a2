package render

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// layout draws a newest-first column graph over a single-parent commit list.
// Each active column tracks the commit it expects next. A commit not yet
// expected anywhere opens a new column (a branch tip); a commit expected by
// several columns is a fork point, so the extra columns collapse into the
// leftmost one with "|/" continuation rows before the node line is drawn.
func layout(commits []*object.Commit) []string {
	var lines []string
	var cols []plumbing.Hash

	for _, c := range commits {
		var at []int
		for i, h := range cols {
			if h == c.Hash {
				at = append(at, i)
			}
		}
		if len(at) == 0 {
			cols = append(cols, c.Hash)
			at = []int{len(cols) - 1}
		}

		// Collapse duplicate columns right to left.
		for len(at) > 1 {
			j := at[len(at)-1]
			var b strings.Builder
			for k := 0; k < j-1; k++ {
				b.WriteString("| ")
			}
			b.WriteString("|/")
			lines = append(lines, b.String())
			cols = append(cols[:j], cols[j+1:]...)
			at = at[:len(at)-1]
		}

		target := at[0]
		var b strings.Builder
		for k := range cols {
			if k == target {
				b.WriteString("* ")
			} else {
				b.WriteString("| ")
			}
		}
		b.WriteString(firstLine(c.Message))
		lines = append(lines, b.String())

		if c.NumParents() > 0 {
			cols[target] = c.ParentHashes[0]
		} else {
			cols = append(cols[:target], cols[target+1:]...)
		}
	}
	return lines
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
