package levelformat

// actorGrid is a sparse width x height lookup of raw actors by tile
// position, used by preprocessActors to resolve spatial meta-actor
// relationships (difficulty markers, dynamic-geometry marker pairs). It
// mirrors the original loader's ActorGrid helper.
type actorGrid struct {
	width, height int
	cells         map[int]int // tile index -> index into actors
	actors        []rawActor
	removed       map[int]bool
}

func newActorGrid(width, height int, actors []rawActor) *actorGrid {
	g := &actorGrid{
		width:   width,
		height:  height,
		cells:   make(map[int]int, len(actors)),
		actors:  actors,
		removed: make(map[int]bool),
	}
	for i, a := range actors {
		g.cells[a.Y*width+a.X] = i
	}
	return g
}

func (g *actorGrid) at(x, y int) (rawActor, bool) {
	idx, ok := g.cells[y*g.width+x]
	if !ok || g.removed[idx] {
		return rawActor{}, false
	}
	return g.actors[idx], true
}

func (g *actorGrid) remove(x, y int) {
	if idx, ok := g.cells[y*g.width+x]; ok {
		g.removed[idx] = true
	}
}

// findSection resolves the dynamic-geometry rectangle anchored at
// (startCol,startRow): scan right on the same row for the top-right
// marker, then down that column for the bottom-right marker. Both
// markers are consumed on success (spec §4.1 "Actor preprocessing").
func (g *actorGrid) findSection(startCol, startRow int) (Rect, bool) {
	for x := startCol; x < g.width; x++ {
		topRight, ok := g.at(x, startRow)
		if !ok || topRight.ID != ActorMetaDynamicGeometryMarkerTopRight {
			continue
		}
		rightCol := topRight.X

		for y := startRow + 1; y < g.height; y++ {
			bottomRight, ok := g.at(rightCol, y)
			if !ok || bottomRight.ID != ActorMetaDynamicGeometryMarkerBottomRight {
				continue
			}
			bottomRow := y
			g.remove(rightCol, startRow)
			g.remove(rightCol, bottomRow)
			return Rect{
				X: startCol,
				Y: startRow,
				W: rightCol - startCol + 1,
				H: bottomRow - startRow + 1,
			}, true
		}
	}
	return Rect{}, false
}

// preprocessActors applies the selected difficulty, resolves
// dynamic-geometry rectangles, and extracts the player spawn position and
// facing, removing every meta-actor involved from the surviving list
// (spec §4.1 "Actor preprocessing").
func preprocessActors(raw []rawActor, width, height int, difficulty Difficulty) (actors []Actor, spawnX, spawnY int, facingLeft bool) {
	grid := newActorGrid(width, height, raw)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			actor, ok := grid.at(col, row)
			if !ok {
				continue
			}

			switch actor.ID {
			case ActorMetaAppearMediumHard:
				if difficulty < DifficultyMedium {
					grid.remove(col+1, row)
				}
			case ActorMetaAppearHard:
				if difficulty < DifficultyHard {
					grid.remove(col+1, row)
				}
			case ActorMetaDynamicGeometryMarkerTopRight, ActorMetaDynamicGeometryMarkerBottomRight:
				// Stray section marker with no owning geometry actor; skip.
			case ActorPlayerSpawnLeft, ActorPlayerSpawnRight:
				spawnX, spawnY = actor.X, actor.Y
				facingLeft = actor.ID == ActorPlayerSpawnLeft
			default:
				if dynamicGeometryActorIDs[actor.ID] {
					if section, ok := grid.findSection(col, row); ok {
						actors = append(actors, Actor{
							ID: actor.ID, X: actor.X, Y: actor.Y,
							HasSection: true, Section: section,
						})
					}
				} else {
					actors = append(actors, Actor{ID: actor.ID, X: actor.X, Y: actor.Y})
				}
			}

			grid.remove(col, row)
		}
	}

	return actors, spawnX, spawnY, facingLeft
}
