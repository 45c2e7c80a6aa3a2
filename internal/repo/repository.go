// Package repo wraps read access to an existing git repository: resolving
// refs to commits, short ids and ref decorations. It is the only package
// that knows how commits are looked up; everything downstream works on
// *object.Commit values.
package repo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrRefNotFound is returned when an input ref does not resolve to a commit.
var ErrRefNotFound = errors.New("ref not found")

// Repository provides read-only commit and ref lookups.
type Repository struct {
	gr *gogit.Repository
}

// Open opens the repository at path, searching parent directories for the
// .git directory the way the git CLI does.
func Open(path string) (*Repository, error) {
	gr, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &Repository{gr: gr}, nil
}

// Wrap adapts an already opened go-git repository.
func Wrap(gr *gogit.Repository) *Repository {
	return &Repository{gr: gr}
}

// Resolve turns a ref name (branch, tag, revision expression) into its commit.
func (r *Repository) Resolve(ref string) (*object.Commit, error) {
	h, err := r.gr.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRefNotFound, ref)
	}
	c, err := r.gr.CommitObject(*h)
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not point to a commit", ErrRefNotFound, ref)
	}
	return c, nil
}

// ShortID returns the abbreviated form of a commit id.
func (r *Repository) ShortID(h plumbing.Hash) string {
	return h.String()[:7]
}

// Decoration returns the parenthesized ref decoration for a commit, e.g.
// "(HEAD -> main, tag: v1.0, origin/main)", or "" when nothing points at it.
// Annotated tags are resolved to their target commit.
func (r *Repository) Decoration(h plumbing.Hash) string {
	var names []string

	headBranch := ""
	headRef, err := r.gr.Head()
	if err == nil {
		if headRef.Name().IsBranch() {
			headBranch = headRef.Name().Short()
		}
		if headRef.Hash() == h {
			if headBranch != "" {
				names = append(names, "HEAD -> "+headBranch)
			} else {
				names = append(names, "HEAD")
			}
		}
	}

	refs, err := r.gr.References()
	if err != nil {
		return ""
	}
	var rest []string
	refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			// The checked-out branch is already shown as "HEAD -> branch".
			if ref.Hash() == h && name.Short() != headBranch {
				rest = append(rest, name.Short())
			}
		case name.IsRemote():
			if ref.Hash() == h {
				rest = append(rest, name.Short())
			}
		case name.IsTag():
			target := ref.Hash()
			if tagObj, err := r.gr.TagObject(ref.Hash()); err == nil {
				target = tagObj.Target
			}
			if target == h {
				rest = append(rest, "tag: "+name.Short())
			}
		}
		return nil
	})
	sort.Strings(rest)
	names = append(names, rest...)

	if len(names) == 0 {
		return ""
	}
	return "(" + strings.Join(names, ", ") + ")"
}
