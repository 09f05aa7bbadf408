package levelformat

import "sort"

// SortByDrawIndex stable-sorts actors by a resource-provided draw index
// (spec §4.1: "Surviving actors are stable-sorted by a resource-provided
// draw index"), so actors spawned from the same actor ID preserve their
// file order while unrelated actor kinds interleave in a fixed, data-driven
// order.
func SortByDrawIndex(actors []Actor, drawIndex func(actorID uint16) int) {
	sort.SliceStable(actors, func(i, j int) bool {
		return drawIndex(actors[i].ID) < drawIndex(actors[j].ID)
	})
}
