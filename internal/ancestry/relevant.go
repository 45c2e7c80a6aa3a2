package ancestry

import (
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FindRoot folds FindLCA over heads, yielding one commit that every head
// reaches along first parents. The LCA of an ancestor of earlier heads and
// the next head is itself an ancestor of all of them, so the fold is valid;
// the result is not necessarily the deepest such commit.
func FindRoot(heads []*object.Commit) (*object.Commit, error) {
	if len(heads) == 0 {
		return nil, errors.New("findRoot requires at least one head")
	}
	root := heads[0]
	for _, h := range heads[1:] {
		var err error
		root, err = FindLCA(root, h)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

// RelevantCommits returns every head plus the pairwise first-parent LCA of
// every ordered head pair, keyed by hash. These are exactly the commits the
// abbreviated graph must draw explicitly.
//
// Both directions of each pair are computed. That is O(H²·D) with D the
// ancestry depth per search; for the handful of heads this tool targets,
// deduplicating the symmetric direction is not worth the bookkeeping.
func RelevantCommits(heads []*object.Commit) (map[plumbing.Hash]*object.Commit, error) {
	relevant := make(map[plumbing.Hash]*object.Commit, len(heads))
	for _, h := range heads {
		relevant[h.Hash] = h
	}
	for i, a := range heads {
		for j, b := range heads {
			if i == j {
				continue
			}
			lca, err := FindLCA(a, b)
			if err != nil {
				return nil, err
			}
			if _, ok := relevant[lca.Hash]; !ok {
				relevant[lca.Hash] = lca
			}
		}
	}
	return relevant, nil
}
