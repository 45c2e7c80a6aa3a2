package ancestry

import (
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoCommonAncestor indicates two commits share no ancestor along
// first-parent chains (disconnected histories).
var ErrNoCommonAncestor = errors.New("no common ancestor along first-parent chains")

// FindLCA returns a common ancestor of a and b reachable by following only
// first parents. The two searches are interleaved and each round is bounded
// by the number of ancestors already discovered on that side, which keeps
// them advancing at comparable depth regardless of how lopsided the two
// histories are.
func FindLCA(a, b *object.Commit) (*object.Commit, error) {
	if a.Hash == b.Hash {
		return a, nil
	}

	seenA := map[plumbing.Hash]bool{a.Hash: true}
	seenB := map[plumbing.Hash]bool{b.Hash: true}
	wa := NewWalker(a)
	wb := NewWalker(b)

	for {
		doneA, match, err := extend(wa, seenA, seenB)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
		doneB, match, err := extend(wb, seenB, seenA)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
		// Both chains hit a root in the same round: the histories are
		// disconnected. Without this check the loop never terminates.
		if doneA && doneB {
			return nil, ErrNoCommonAncestor
		}
	}
}

// extend advances w by at most len(own) steps, checking each newly visited
// commit against the other side's ancestor set. exhausted reports that the
// walker sits at a root commit.
func extend(w *Walker, own, other map[plumbing.Hash]bool) (exhausted bool, match *object.Commit, err error) {
	steps := len(own)
	for i := 0; i < steps; i++ {
		ok, err := w.Step()
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return true, nil, nil
		}
		c := w.Current()
		if other[c.Hash] {
			return false, c, nil
		}
		own[c.Hash] = true
	}
	return false, nil, nil
}
