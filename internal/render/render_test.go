package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFauxRepoSingleNode(t *testing.T) {
	f, err := NewFauxRepo()
	require.NoError(t, err)

	_, err = f.CreateRoot("root node")
	require.NoError(t, err)

	lines, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{"* root node"}, lines)
}

func TestFauxRepoLinearBranch(t *testing.T) {
	f, err := NewFauxRepo()
	require.NoError(t, err)

	root, err := f.CreateRoot("root")
	require.NoError(t, err)
	branch, err := f.BranchFrom(root, "ref-head-1")
	require.NoError(t, err)
	require.NoError(t, f.Checkout(branch))
	_, err = f.CommitOnCurrent("first")
	require.NoError(t, err)
	_, err = f.CommitOnCurrent("second")
	require.NoError(t, err)

	lines, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"* second",
		"* first",
		"* root",
	}, lines)
}

func TestFauxRepoForkedBranches(t *testing.T) {
	f, err := NewFauxRepo()
	require.NoError(t, err)

	root, err := f.CreateRoot("root")
	require.NoError(t, err)

	b1, err := f.BranchFrom(root, "ref-head-1")
	require.NoError(t, err)
	require.NoError(t, f.Checkout(b1))
	_, err = f.CommitOnCurrent("x1")
	require.NoError(t, err)

	b2, err := f.BranchFrom(root, "ref-head-2")
	require.NoError(t, err)
	require.NoError(t, f.Checkout(b2))
	_, err = f.CommitOnCurrent("y1")
	require.NoError(t, err)
	_, err = f.CommitOnCurrent("y2")
	require.NoError(t, err)

	lines, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"* y2",
		"* y1",
		"| * x1",
		"|/",
		"* root",
	}, lines)
}

func TestFauxRepoBranchFromMidChain(t *testing.T) {
	f, err := NewFauxRepo()
	require.NoError(t, err)

	root, err := f.CreateRoot("root")
	require.NoError(t, err)
	b1, err := f.BranchFrom(root, "ref-head-1")
	require.NoError(t, err)
	require.NoError(t, f.Checkout(b1))
	mid, err := f.CommitOnCurrent("mid")
	require.NoError(t, err)
	_, err = f.CommitOnCurrent("tip1")
	require.NoError(t, err)

	b2, err := f.BranchFrom(mid, "ref-head-2")
	require.NoError(t, err)
	require.NoError(t, f.Checkout(b2))
	_, err = f.CommitOnCurrent("tip2")
	require.NoError(t, err)

	lines, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"* tip2",
		"| * tip1",
		"|/",
		"* mid",
		"* root",
	}, lines)
}

func TestFauxRepoLabelsPreservedVerbatim(t *testing.T) {
	f, err := NewFauxRepo()
	require.NoError(t, err)

	label := "\x1f7\x1fdeadbee tricky * label (tag: v1)"
	_, err = f.CreateRoot(label)
	require.NoError(t, err)

	lines, err := f.Render()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "* "+label, lines[0])
}

func TestFauxRepoRenderDeterministic(t *testing.T) {
	build := func() []string {
		f, err := NewFauxRepo()
		require.NoError(t, err)
		root, err := f.CreateRoot("root")
		require.NoError(t, err)
		b, err := f.BranchFrom(root, "ref-head-1")
		require.NoError(t, err)
		require.NoError(t, f.Checkout(b))
		_, err = f.CommitOnCurrent("tip")
		require.NoError(t, err)
		lines, err := f.Render()
		require.NoError(t, err)
		return lines
	}
	assert.Equal(t, build(), build())
}
