package rope

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Width returns the display width of the text of r, as it would occupy a
// terminal or a grid of monospaced cells. Grapheme clusters are never split
// across fragment boundaries for measuring. A nil context selects
// uax11.LatinContext.
func (r Rope) Width(context *uax11.Context) int {
	if r.IsEmpty() {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(r.String())
	return uax11.StringWidth(gstr, context)
}
