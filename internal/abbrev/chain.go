// Package abbrev turns a set of head commits into an abbreviated graph:
// it selects the commits that must be drawn explicitly, replays each head's
// chain into a render target with run-length markers for the skipped spans,
// and rewrites the rendered glyphs by node role.
package abbrev

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kurobon/gitabbrev/internal/render"
)

// chainEntry pairs a commit that must be drawn with the number of commits
// skipped immediately before it on the first-parent path.
type chainEntry struct {
	commit *object.Commit
	gap    int
}

// buildChain walks from head back to the nearest already-rendered commit,
// keeping the relevant commits and counting the skipped ones between them.
// The result is oldest-first; its first entry is the anchor the new branch
// buds from. The stop commit always joins the chain so the anchor lookup
// cannot land on a commit rendered by a different branch.
func buildChain(head *object.Commit, relevant map[plumbing.Hash]*object.Commit, rendered map[plumbing.Hash]render.NodeRef) ([]chainEntry, error) {
	var chain []chainEntry
	gap := 0

	// Walking newest to oldest, the commits skipped after appending an entry
	// sit between that entry and the next one found, so each finished gap
	// count belongs to the previously appended (newer) entry. The -1 keeps
	// the entry's own commit out of its gap count.
	appendEntry := func(c *object.Commit) {
		if len(chain) > 0 {
			chain[len(chain)-1].gap = gap - 1
		}
		chain = append(chain, chainEntry{commit: c})
		gap = 0
	}

	c := head
	for {
		gap++
		_, isRelevant := relevant[c.Hash]
		if isRelevant {
			appendEntry(c)
		}
		if _, done := rendered[c.Hash]; done {
			if !isRelevant {
				appendEntry(c)
			}
			break
		}
		if c.NumParents() == 0 {
			// True repository root; nothing older can anchor this branch.
			break
		}
		p, err := c.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("read parent of %s: %w", c.Hash, err)
		}
		c = p
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
