// Package render draws a commit graph as text. The Renderer interface is the
// contract the assembler programs against: nodes are laid down one branch at
// a time, then rendered newest-first as glyph-prefixed lines with each node's
// label embedded verbatim.
package render

import "github.com/go-git/go-git/v5/plumbing"

// NodeRef identifies a node created in a render target.
type NodeRef struct {
	hash plumbing.Hash
}

// BranchRef identifies a branch created in a render target.
type BranchRef struct {
	name plumbing.ReferenceName
}

// Renderer is the graph render target. CreateRoot must be called exactly
// once, before any branch. Render may only be called after all nodes exist.
type Renderer interface {
	CreateRoot(label string) (NodeRef, error)
	BranchFrom(node NodeRef, name string) (BranchRef, error)
	Checkout(branch BranchRef) error
	CommitOnCurrent(label string) (NodeRef, error)
	Render() ([]string, error)
}
