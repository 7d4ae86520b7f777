// Package config holds the formatting style policy and loads it from
// .larkfmt.toml files.
package config

import (
	"errors"
	"fmt"
)

// Style is the layout policy applied by the formatter.
type Style struct {
	// ColonPad is extra space between the longest header and the colon.
	ColonPad int `toml:"colon_pad"`
	// BodyGap is the space between the colon and the first symbol.
	BodyGap int `toml:"body_gap"`
	// CommentGap is the space between the widest body line of a block and
	// the trailing-comment column.
	CommentGap int `toml:"comment_gap"`
	// MaxCommentColumn caps the trailing-comment column; 0 disables the cap.
	MaxCommentColumn int `toml:"max_comment_column"`
	// LineWidth enables overflow warnings for longer lines; 0 disables them.
	LineWidth int `toml:"line_width"`
}

// DefaultStyle returns the built-in policy.
func DefaultStyle() Style {
	return Style{
		ColonPad:   0,
		BodyGap:    1,
		CommentGap: 2,
	}
}

// Validate reports every invalid field.
func (s Style) Validate() error {
	var errs []error
	check := func(name string, v, lo int) {
		if v < lo {
			errs = append(errs, fmt.Errorf("%s must be >= %d, got %d", name, lo, v))
		}
	}
	check("colon_pad", s.ColonPad, 0)
	check("body_gap", s.BodyGap, 1)
	check("comment_gap", s.CommentGap, 0)
	check("max_comment_column", s.MaxCommentColumn, 0)
	check("line_width", s.LineWidth, 0)
	return errors.Join(errs...)
}
