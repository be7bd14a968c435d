package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/world"
)

// Validate checks that the graph is a perfect maze: unique positions,
// reciprocal links between grid neighbours only, every pair of adjacent
// rooms linked, exactly one link fewer than rooms, and every room reachable
// from the spawn room.
func (g *Graph) Validate() error {
	if !g.generated {
		return ErrNotGenerated
	}
	if g.occupied.Size() != len(g.order) || len(g.rooms) != len(g.order) {
		return invalidMaze("%d occupied positions for %d rooms", g.occupied.Size(), len(g.order))
	}

	for _, room := range g.order {
		pos := room.Position()
		if at := g.byPosition[pos]; at != room {
			return invalidMaze("room %q is not the room registered at %s", room.Name, pos)
		}

		for _, dir := range world.AllDirections() {
			adjacent := g.byPosition[pos.Add(dir.Offset())]
			id, linked := room.Neighbor(dir)

			if !linked {
				if adjacent != nil {
					return invalidMaze("rooms %q and %q touch %s without a link", room.Name, adjacent.Name, dir)
				}
				continue
			}

			other := g.rooms[id]
			if other == nil {
				return invalidMaze("room %q links %s to unknown room %s", room.Name, dir, id)
			}
			if other != adjacent {
				return invalidMaze("room %q links %s to %q which is not adjacent", room.Name, dir, other.Name)
			}
			if back, ok := other.Neighbor(dir.Opposite()); !ok || back != room.ID {
				return invalidMaze("link %q %s %q has no reciprocal", room.Name, dir, other.Name)
			}
		}
	}

	if links := g.LinkCount(); links != len(g.order)-1 {
		return invalidMaze("%d links for %d rooms", links, len(g.order))
	}
	if reached := g.countReachable(); reached != len(g.order) {
		return invalidMaze("%d of %d rooms reachable from spawn", reached, len(g.order))
	}
	return nil
}

// countReachable counts rooms reachable from the spawn room using BFS
func (g *Graph) countReachable() int {
	if g.spawn == nil {
		return 0
	}
	visited := mapset.New[world.RoomID]()
	pending := queue.New[*world.Room]()
	pending.Enqueue(g.spawn)
	visited.Put(g.spawn.ID)

	for !pending.Empty() {
		current := pending.Dequeue()
		for _, dir := range world.AllDirections() {
			n := g.Neighbor(current, dir)
			if n != nil && !visited.Has(n.ID) {
				visited.Put(n.ID)
				pending.Enqueue(n)
			}
		}
	}
	return visited.Size()
}
