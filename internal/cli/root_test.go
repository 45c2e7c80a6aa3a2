package cli

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurobon/gitabbrev/internal/config"
	"github.com/kurobon/gitabbrev/internal/repo"
)

func TestLabelForIncludesShortIDMessageAndDecoration(t *testing.T) {
	gr, err := gogit.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)
	wt, err := gr.Worktree()
	require.NoError(t, err)

	sig := &object.Signature{
		Name:  "dev",
		Email: "dev@example.com",
		When:  time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	h, err := wt.Commit("add parser\n\nlong body", &gogit.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})
	require.NoError(t, err)

	r := repo.Wrap(gr)
	c, err := r.Resolve("master")
	require.NoError(t, err)

	label := labelFor(r)(c)
	assert.Equal(t, h.String()[:7]+" add parser (HEAD -> master)", label)
}

func TestGlyphsForWithoutColor(t *testing.T) {
	cfg := &config.Config{HeadGlyph: "@", AbbrevGlyph: "|"}

	g := glyphsFor(cfg)
	assert.Equal(t, "@", g.Head)
	assert.Equal(t, "|", g.Abbrev)
}

func TestGlyphsForWithColorKeepsGlyphVisible(t *testing.T) {
	cfg := &config.Config{HeadGlyph: "@", AbbrevGlyph: "|", Color: true}

	g := glyphsFor(cfg)
	assert.Contains(t, g.Head, "@")
	assert.Contains(t, g.Abbrev, "|")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "subject", firstLine("subject\n\nbody"))
	assert.Equal(t, "subject", firstLine("subject"))
	assert.Equal(t, "subject", firstLine("subject \n"))
}
