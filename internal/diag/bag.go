package diag

import (
	"cmp"
	"slices"
)

// Bag collects the diagnostics of one run up to a fixed limit.
type Bag struct {
	items []Diagnostic
	limit int
}

func NewBag(limit int) *Bag {
	return &Bag{limit: limit}
}

// Add keeps d unless the bag is full and reports whether it did.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic is an error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity >= SevError
	})
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the diagnostics; the slice aliases the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends everything from other, raising the limit to fit.
func (b *Bag) Merge(other *Bag) {
	b.limit = max(b.limit, len(b.items)+len(other.items))
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by position, most severe first, then by code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
