// Package cli implements the gitabbrev command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"

	"github.com/kurobon/gitabbrev/internal/abbrev"
	"github.com/kurobon/gitabbrev/internal/config"
	"github.com/kurobon/gitabbrev/internal/render"
	"github.com/kurobon/gitabbrev/internal/repo"
)

// Execute runs the gitabbrev CLI and returns an error if the command fails.
func Execute() error {
	var (
		verbose    bool
		repoPath   string
		configPath string
		colorize   bool
	)

	root := &cobra.Command{
		Use:   "gitabbrev <ref> [<ref>...]",
		Short: "Render an abbreviated ancestry graph for a set of refs",
		Long: `gitabbrev draws the ancestry graph of the given refs, collapsing long
uninteresting linear runs into "N commits abbreviated" markers while keeping
heads and branch points visible. Only first-parent history is followed.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			return run(cmd, logger, args, repoPath, configPath, colorize)
		},
	}

	root.Flags().StringVarP(&repoPath, "repo", "C", ".", "path to the repository")
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.Flags().BoolVar(&colorize, "color", false, "colorize node glyphs")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.Execute()
}

func run(cmd *cobra.Command, logger *charmlog.Logger, refs []string, repoPath, configPath string, colorize bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if colorize {
		cfg.Color = true
	}

	r, err := repo.Open(repoPath)
	if err != nil {
		return err
	}

	heads := make([]*object.Commit, 0, len(refs))
	for _, ref := range refs {
		c, err := r.Resolve(ref)
		if err != nil {
			return err
		}
		logger.Debug("resolved ref", "ref", ref, "commit", r.ShortID(c.Hash))
		heads = append(heads, c)
	}

	target, err := render.NewFauxRepo()
	if err != nil {
		return err
	}

	lines, err := abbrev.Run(target, heads, labelFor(r), glyphsFor(cfg))
	if err != nil {
		return err
	}
	logger.Debug("rendered graph", "heads", len(heads), "lines", len(lines))

	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// labelFor formats commit node labels: short id, first message line, and
// the ref decoration when one exists.
func labelFor(r *repo.Repository) abbrev.LabelFunc {
	return func(c *object.Commit) string {
		label := r.ShortID(c.Hash) + " " + firstLine(c.Message)
		if deco := r.Decoration(c.Hash); deco != "" {
			label += " " + deco
		}
		return label
	}
}

func glyphsFor(cfg *config.Config) abbrev.Glyphs {
	g := abbrev.Glyphs{Head: cfg.HeadGlyph, Abbrev: cfg.AbbrevGlyph}
	if cfg.Color {
		g.Head = styleHead.Render(g.Head)
		g.Abbrev = styleAbbrev.Render(g.Abbrev)
	}
	return g
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
