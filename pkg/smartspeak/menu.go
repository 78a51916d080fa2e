package smartspeak

import (
	"cmp"
	"slices"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/locale"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
)

// MenuItem represents a single navigation destination in a role's menu.
type MenuItem struct {
	Text    string // Localized screen title
	Screen  string // Screen identifier to navigate to
	Focused bool   // Whether this is the router's current screen
}

// Menu lists the screens registered on r that role can see, ordered by their
// menu order. Titles come from catalog; a nil catalog uses screen identifiers.
func Menu(r *router.Router, role constants.Role, catalog *locale.Catalog) []MenuItem {
	type entry struct {
		screen string
		order  int
	}

	var entries []entry
	for _, screen := range r.Registered() {
		spec, _ := r.Spec(screen)
		if spec.VisibleTo(role) {
			entries = append(entries, entry{screen: screen, order: spec.Order})
		}
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(cmp.Compare(a.order, b.order), cmp.Compare(a.screen, b.screen))
	})

	current := r.Current()
	items := make([]MenuItem, 0, len(entries))
	for _, e := range entries {
		text := e.screen
		if catalog != nil {
			text = catalog.Title(e.screen)
		}
		items = append(items, MenuItem{
			Text:    text,
			Screen:  e.screen,
			Focused: e.screen == current,
		})
	}
	return items
}
