// Package pattern loads board seed patterns from YAML files and packs
// them into field buffers.
//
// A pattern file names a starting configuration and draws it with the
// same glyphs the board renderer emits:
//
//	name: hook
//	rows:
//	  - "....X"
//	  - "....X"
//	  - "..XXX"
//
// Rows shorter than the board width are padded with dead cells; missing
// rows are dead. Rows beyond the board, or glyphs other than '.' and
// 'X', are rejected.
package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/petri/internal/board"
)

// Pattern is a named board seed.
type Pattern struct {
	// Name identifies the pattern.
	Name string `yaml:"name"`

	// Rows draws the live cells, top to bottom, '.' dead and 'X' alive.
	Rows []string `yaml:"rows"`
}

// Load reads and validates a pattern file.
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pattern %s: %w", path, err)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("pattern %s: %w", path, err)
	}
	return &p, nil
}

func (p *Pattern) validate() error {
	if len(p.Rows) > board.Height {
		return fmt.Errorf("has %d rows, board height is %d", len(p.Rows), board.Height)
	}
	for y, row := range p.Rows {
		if len(row) > board.Width {
			return fmt.Errorf("row %d has %d glyphs, board width is %d", y, len(row), board.Width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] != board.GlyphAlive && row[x] != board.GlyphDead {
				return fmt.Errorf("row %d: unknown glyph %q at column %d", y, row[x], x)
			}
		}
	}
	return nil
}

// Field packs the pattern into a board field buffer of exactly
// board.FieldLen bytes.
func (p *Pattern) Field() []byte {
	b := board.New()
	for y, row := range p.Rows {
		for x := 0; x < len(row); x++ {
			if row[x] == board.GlyphAlive {
				b.SetBit(x, y, true)
			}
		}
	}
	return b.Bytes()
}
