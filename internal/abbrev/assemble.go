package abbrev

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kurobon/gitabbrev/internal/ancestry"
	"github.com/kurobon/gitabbrev/internal/render"
)

// ErrAnchorNotRendered indicates a chain's budding point was missing from
// the rendered set. With the root rendered first this cannot happen; seeing
// it means an internal bug, not bad input.
var ErrAnchorNotRendered = errors.New("branch anchor has not been rendered")

// RoleTag classifies a rendered node for glyph rewriting.
type RoleTag int

const (
	RoleRegular RoleTag = iota
	RoleHead
	RoleAbbrev
)

// LabelFunc formats the visible label of a commit node.
type LabelFunc func(*object.Commit) string

// nodeMeta records one rendered node in emission order. The slice index is
// the marker embedded in the node's label; role lookups go through it rather
// than through parsing identity back out of rendered text. Only the literal
// abbreviation count is both embedded (for the reader) and tracked here.
type nodeMeta struct {
	role RoleTag
	gap  int
}

// Assembler replays abbreviated head chains into a render target, one
// branch per head in input order. Later chains anchor on nodes rendered by
// earlier ones, so the order is load-bearing. An Assembler serves a single
// Assemble/Postprocess cycle and owns its rendered map for that duration.
type Assembler struct {
	renderer render.Renderer
	label    LabelFunc
	seq      int
	nodes    []nodeMeta
	rendered map[plumbing.Hash]render.NodeRef
}

// NewAssembler returns an assembler emitting into r with commit labels
// produced by label.
func NewAssembler(r render.Renderer, label LabelFunc) *Assembler {
	return &Assembler{
		renderer: r,
		label:    label,
		rendered: make(map[plumbing.Hash]render.NodeRef),
	}
}

const markerSep = "\x1f"

// newNode registers node metadata and returns the label to hand to the
// renderer: a unique marker token followed by the visible text.
func (a *Assembler) newNode(role RoleTag, gap int, visible string) string {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, nodeMeta{role: role, gap: gap})
	return markerSep + strconv.Itoa(idx) + markerSep + visible
}

func abbrevText(n int) string {
	if n == 1 {
		return "1 commit abbreviated"
	}
	return fmt.Sprintf("%d commits abbreviated", n)
}

// Assemble renders the root and then one branch per head.
func (a *Assembler) Assemble(heads []*object.Commit) error {
	relevant, err := ancestry.RelevantCommits(heads)
	if err != nil {
		return err
	}
	root, err := ancestry.FindRoot(heads)
	if err != nil {
		return err
	}

	isHead := make(map[plumbing.Hash]bool, len(heads))
	for _, h := range heads {
		isHead[h.Hash] = true
	}

	role := RoleRegular
	if isHead[root.Hash] {
		role = RoleHead
	}
	ref, err := a.renderer.CreateRoot(a.newNode(role, 0, a.label(root)))
	if err != nil {
		return fmt.Errorf("render root node: %w", err)
	}
	a.rendered[root.Hash] = ref

	for _, head := range heads {
		if err := a.addBranch(head, relevant, isHead); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) addBranch(head *object.Commit, relevant map[plumbing.Hash]*object.Commit, isHead map[plumbing.Hash]bool) error {
	chain, err := buildChain(head, relevant, a.rendered)
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return fmt.Errorf("%w: empty chain for %s", ErrAnchorNotRendered, head.Hash)
	}
	anchor, ok := a.rendered[chain[0].commit.Hash]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAnchorNotRendered, chain[0].commit.Hash)
	}

	a.seq++
	branch, err := a.renderer.BranchFrom(anchor, "ref-head-"+strconv.Itoa(a.seq))
	if err != nil {
		return fmt.Errorf("create branch for %s: %w", head.Hash, err)
	}
	if err := a.renderer.Checkout(branch); err != nil {
		return fmt.Errorf("checkout branch for %s: %w", head.Hash, err)
	}

	for _, entry := range chain[1:] {
		if entry.gap > 0 {
			if _, err := a.renderer.CommitOnCurrent(a.newNode(RoleAbbrev, entry.gap, abbrevText(entry.gap))); err != nil {
				return fmt.Errorf("render abbreviation node: %w", err)
			}
		}
		role := RoleRegular
		if isHead[entry.commit.Hash] {
			role = RoleHead
		}
		ref, err := a.renderer.CommitOnCurrent(a.newNode(role, 0, a.label(entry.commit)))
		if err != nil {
			return fmt.Errorf("render node %s: %w", entry.commit.Hash, err)
		}
		a.rendered[entry.commit.Hash] = ref
	}
	return nil
}
