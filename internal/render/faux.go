package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// FauxRepo is a Renderer backed by a throwaway in-memory git repository:
// every node becomes an empty commit whose message is the node label, and
// every branch a real branch. The repository only exists to carry the
// abbreviated topology for one Render call and is never persisted.
type FauxRepo struct {
	repo  *gogit.Repository
	wt    *gogit.Worktree
	clock time.Time
}

var _ Renderer = (*FauxRepo)(nil)

// NewFauxRepo initializes an empty in-memory render target.
func NewFauxRepo() (*FauxRepo, error) {
	repo, err := gogit.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		return nil, fmt.Errorf("init render repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("render repository worktree: %w", err)
	}
	return &FauxRepo{
		repo:  repo,
		wt:    wt,
		clock: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

// signature returns a strictly increasing committer identity. The synthetic
// clock makes newest-first ordering deterministic, so rendering the same
// node sequence twice yields identical output.
func (f *FauxRepo) signature() *object.Signature {
	f.clock = f.clock.Add(time.Second)
	return &object.Signature{
		Name:  "gitabbrev",
		Email: "gitabbrev@localhost",
		When:  f.clock,
	}
}

func (f *FauxRepo) commit(label string) (NodeRef, error) {
	sig := f.signature()
	h, err := f.wt.Commit(label, &gogit.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})
	if err != nil {
		return NodeRef{}, fmt.Errorf("create node: %w", err)
	}
	return NodeRef{hash: h}, nil
}

// CreateRoot creates the base node of the graph.
func (f *FauxRepo) CreateRoot(label string) (NodeRef, error) {
	return f.commit(label)
}

// BranchFrom creates a branch pointing at node without checking it out.
func (f *FauxRepo) BranchFrom(node NodeRef, name string) (BranchRef, error) {
	refName := plumbing.NewBranchReferenceName(name)
	ref := plumbing.NewHashReference(refName, node.hash)
	if err := f.repo.Storer.SetReference(ref); err != nil {
		return BranchRef{}, fmt.Errorf("create branch %s: %w", name, err)
	}
	return BranchRef{name: refName}, nil
}

// Checkout makes branch the target of subsequent CommitOnCurrent calls.
func (f *FauxRepo) Checkout(branch BranchRef) error {
	if err := f.wt.Checkout(&gogit.CheckoutOptions{Branch: branch.name}); err != nil {
		return fmt.Errorf("checkout %s: %w", branch.name.Short(), err)
	}
	return nil
}

// CommitOnCurrent appends a node to the checked-out branch.
func (f *FauxRepo) CommitOnCurrent(label string) (NodeRef, error) {
	return f.commit(label)
}

// Render draws every node reachable from the repository's branches as a
// newest-first column graph, one node per line plus continuation lines.
func (f *FauxRepo) Render() ([]string, error) {
	commits, err := f.collect()
	if err != nil {
		return nil, err
	}
	return layout(commits), nil
}

// collect gathers all commits reachable from branch tips, newest first.
func (f *FauxRepo) collect() ([]*object.Commit, error) {
	var tips []plumbing.Hash
	iter, err := f.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("list render branches: %w", err)
	}
	iter.ForEach(func(ref *plumbing.Reference) error {
		tips = append(tips, ref.Hash())
		return nil
	})

	seen := make(map[plumbing.Hash]bool)
	var commits []*object.Commit
	queue := tips
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if seen[h] {
			continue
		}
		seen[h] = true
		c, err := f.repo.CommitObject(h)
		if err != nil {
			return nil, fmt.Errorf("read node %s: %w", h, err)
		}
		commits = append(commits, c)
		queue = append(queue, c.ParentHashes...)
	}

	// The synthetic clock is strictly increasing, so committer time gives a
	// total order in which every child precedes its parent.
	sort.Slice(commits, func(i, j int) bool {
		ti, tj := commits[i].Committer.When, commits[j].Committer.When
		if ti.Equal(tj) {
			return commits[i].Hash.String() > commits[j].Hash.String()
		}
		return ti.After(tj)
	})
	return commits, nil
}
