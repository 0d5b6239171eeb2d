package segment

import (
	"github.com/npillmayer/parasplit"
	"github.com/npillmayer/parasplit/uax11"
)

// DefaultMinWidth is the display width below which a sentence is considered
// too short to stand on its own, unless it is the last one of a paragraph.
const DefaultMinWidth = 8

// MergeShort folds every span of a display width less than minWidth into the
// span following it, together with the separator between them. Merging
// repeats until the merged span is wide enough or it is the last span.
// The last span is never merged.
//
// Display width is measured in the sense of UAX#11 (East Asian Width), i.e.
// wide characters count 2 and combining marks count 0; ctx may be nil.
// A minWidth <= 0 switches merging off.
func MergeShort(text string, spans []parasplit.Span, minWidth int, ctx *uax11.Context) []parasplit.Span {
	if len(spans) < 2 || minWidth <= 0 {
		return spans
	}
	merged := make([]parasplit.Span, 0, len(spans))
	current := spans[0]
	for _, next := range spans[1:] {
		if w := uax11.StringWidth(current.Of(text), ctx); w < minWidth {
			CT().P("width", w).Debugf("merge %q with following sentence", current.Of(text))
			current.To = next.To
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
