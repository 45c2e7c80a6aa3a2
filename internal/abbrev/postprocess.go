package abbrev

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kurobon/gitabbrev/internal/render"
)

// Glyphs holds the role-specific node glyphs substituted during
// postprocessing. Regular nodes keep the renderer's default glyph.
type Glyphs struct {
	Head   string
	Abbrev string
}

// DefaultGlyphs returns the standard glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Head: "@", Abbrev: "|"}
}

// Postprocess strips the marker token from each rendered node line and
// swaps in the role glyph. Lines without a marker are continuation lines
// and pass through unchanged; line order is preserved.
func (a *Assembler) Postprocess(lines []string, glyphs Glyphs) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		i := strings.Index(line, markerSep)
		if i < 0 {
			out = append(out, line)
			continue
		}
		rest := line[i+len(markerSep):]
		j := strings.Index(rest, markerSep)
		if j < 0 {
			return nil, fmt.Errorf("unterminated node marker in line %q", line)
		}
		idx, err := strconv.Atoi(rest[:j])
		if err != nil || idx < 0 || idx >= len(a.nodes) {
			return nil, fmt.Errorf("unknown node marker %q in line %q", rest[:j], line)
		}

		stripped := line[:i] + rest[j+len(markerSep):]
		switch a.nodes[idx].role {
		case RoleHead:
			stripped = replaceGlyph(stripped, i, glyphs.Head)
		case RoleAbbrev:
			stripped = replaceGlyph(stripped, i, glyphs.Abbrev)
		}
		out = append(out, stripped)
	}
	return out, nil
}

// replaceGlyph swaps the node glyph, the last "*" left of the label start.
func replaceGlyph(line string, labelStart int, glyph string) string {
	k := strings.LastIndex(line[:labelStart], "*")
	if k < 0 {
		return line
	}
	return line[:k] + glyph + line[k+1:]
}

// Run assembles heads into r, renders, and rewrites glyphs. It is the whole
// pipeline behind one invocation; r is discarded afterwards.
func Run(r render.Renderer, heads []*object.Commit, label LabelFunc, glyphs Glyphs) ([]string, error) {
	a := NewAssembler(r, label)
	if err := a.Assemble(heads); err != nil {
		return nil, err
	}
	lines, err := r.Render()
	if err != nil {
		return nil, fmt.Errorf("render graph: %w", err)
	}
	return a.Postprocess(lines, glyphs)
}
