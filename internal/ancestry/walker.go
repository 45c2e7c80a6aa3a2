// Package ancestry implements first-parent ancestry searches over commit
// objects: single-step walking, pairwise common-ancestor lookup, and the
// derived root / relevant-set computations.
//
// Merge commits are followed only through their first parent. Results are
// therefore "some" common ancestor along first-parent chains, not the
// merge base of the full DAG; go-git's Commit.MergeBase would change which
// commits are picked as branch points and is intentionally not used here.
package ancestry

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Walker steps a single cursor backward along first-parent edges.
type Walker struct {
	cur *object.Commit
}

// NewWalker returns a walker positioned at start.
func NewWalker(start *object.Commit) *Walker {
	return &Walker{cur: start}
}

// Current returns the commit the walker is positioned at.
func (w *Walker) Current() *object.Commit {
	return w.cur
}

// Step advances to the first parent. At a root commit it reports ok=false
// and leaves the cursor unchanged.
func (w *Walker) Step() (ok bool, err error) {
	if w.cur.NumParents() == 0 {
		return false, nil
	}
	p, err := w.cur.Parent(0)
	if err != nil {
		return false, fmt.Errorf("read parent of %s: %w", w.cur.Hash, err)
	}
	w.cur = p
	return true, nil
}
