package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOverlappingEdits is returned by ApplyEdits when two edits touch the
// same bytes. Edits are built so that this cannot happen.
var ErrOverlappingEdits = errors.New("overlapping edits")

// TextEdit replaces the bytes [StartOffset, EndOffset) with NewText.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// EditBuilder accumulates text edits for one document.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{Edits: make([]TextEdit, 0, 2)}
}

// ReplaceRange adds an edit that replaces [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{StartOffset: start, EndOffset: end, NewText: newText})
}

// Insert adds an edit that inserts text at offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that removes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// Apply applies the accumulated edits to src.
func (b *EditBuilder) Apply(src string) (string, error) {
	return ApplyEdits(src, b.Edits)
}

// ApplyEdits applies edits to src, working from the highest start offset
// down so earlier offsets stay valid. Insertions at the same offset keep
// the order they were added in.
func ApplyEdits(src string, edits []TextEdit) (string, error) {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartOffset < sorted[j].StartOffset
	})

	for i, e := range sorted {
		if e.StartOffset < 0 || e.EndOffset < e.StartOffset || e.EndOffset > len(src) {
			return "", fmt.Errorf("edit [%d,%d) out of range for %d bytes", e.StartOffset, e.EndOffset, len(src))
		}
		if i > 0 && sorted[i-1].EndOffset > e.StartOffset {
			return "", fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingEdits,
				sorted[i-1].StartOffset, sorted[i-1].EndOffset, e.StartOffset, e.EndOffset)
		}
	}

	out := src
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		out = out[:e.StartOffset] + e.NewText + out[e.EndOffset:]
	}
	return out, nil
}

// joinDynamic renders the residual style object from the dynamic entries.
func joinDynamic(props []DynamicProperty) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Text
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
