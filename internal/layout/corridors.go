package layout

import (
	"math"
	"sort"

	"github.com/mv-archer/repoworld-engine/internal/rng"
)

// edge is a candidate corridor between two rooms, indexed by position
// in the room slice.
type edge struct {
	from, to int
	distance float64
}

func edgeBetween(rooms []*Room, i, j int) edge {
	if i > j {
		i, j = j, i
	}
	dx := float64(rooms[i].Center.X - rooms[j].Center.X)
	dy := float64(rooms[i].Center.Y - rooms[j].Center.Y)
	return edge{from: i, to: j, distance: math.Hypot(dx, dy)}
}

// BuildCorridors connects the rooms: a Delaunay triangulation over room
// centers supplies candidate edges, Kruskal's algorithm keeps a minimum
// spanning tree, and a controlled number of extra triangulation edges is
// added back for loop variety. Each accepted edge becomes a corridor
// with a concrete straight or L-shaped path.
func BuildCorridors(rooms []*Room, g *rng.Generator, ids *IDAllocator, opts Options) []*Corridor {
	n := len(rooms)
	if n < 2 {
		return []*Corridor{}
	}
	if n == 2 {
		return []*Corridor{corridorFor(rooms, edgeBetween(rooms, 0, 1), ids, opts)}
	}

	centers := make([]Point, n)
	for i, r := range rooms {
		centers[i] = r.Center
	}

	// Deduplicated triangulation edges, in discovery order.
	seen := make(map[[2]int]bool)
	var candidates []edge
	addCandidate := func(i, j int) {
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if seen[key] {
			return
		}
		seen[key] = true
		candidates = append(candidates, edgeBetween(rooms, i, j))
	}
	for _, tr := range delaunay(centers) {
		addCandidate(tr.a, tr.b)
		addCandidate(tr.b, tr.c)
		addCandidate(tr.c, tr.a)
	}

	byDistance := make([]edge, len(candidates))
	copy(byDistance, candidates)
	sortEdges(byDistance)

	uf := newUnionFind(n)
	accepted := make(map[[2]int]bool)
	mst := make([]edge, 0, n-1)
	for _, e := range byDistance {
		if len(mst) == n-1 {
			break
		}
		if uf.union(e.from, e.to) {
			mst = append(mst, e)
			accepted[[2]int{e.from, e.to}] = true
		}
	}

	// A degenerate triangulation (collinear or duplicate centers) can
	// leave the pool short of a spanning tree; finish over all pairs.
	if len(mst) < n-1 {
		var rest []edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !seen[[2]int{i, j}] {
					rest = append(rest, edgeBetween(rooms, i, j))
				}
			}
		}
		sortEdges(rest)
		for _, e := range rest {
			if len(mst) == n-1 {
				break
			}
			if uf.union(e.from, e.to) {
				mst = append(mst, e)
				accepted[[2]int{e.from, e.to}] = true
			}
		}
	}

	extraCount := int(float64(len(mst)) * opts.ExtraEdgeRatio)
	var extras []edge
	if extraCount > 0 {
		var pool []edge
		for _, e := range candidates {
			if !accepted[[2]int{e.from, e.to}] {
				pool = append(pool, e)
			}
		}
		pool = rng.Shuffle(g, pool)
		if extraCount > len(pool) {
			extraCount = len(pool)
		}
		extras = pool[:extraCount]
	}

	corridors := make([]*Corridor, 0, len(mst)+len(extras))
	for _, e := range mst {
		corridors = append(corridors, corridorFor(rooms, e, ids, opts))
	}
	for _, e := range extras {
		corridors = append(corridors, corridorFor(rooms, e, ids, opts))
	}
	return corridors
}

func sortEdges(edges []edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].distance != edges[j].distance {
			return edges[i].distance < edges[j].distance
		}
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
}

func corridorFor(rooms []*Room, e edge, ids *IDAllocator, opts Options) *Corridor {
	return &Corridor{
		ID:         ids.NextCorridorID(),
		FromRoomID: rooms[e.from].ID,
		ToRoomID:   rooms[e.to].ID,
		Path:       buildPath(rooms[e.from].Center, rooms[e.to].Center),
		Width:      opts.CorridorWidth,
	}
}

// buildPath returns the corridor polyline between two centers: straight
// when the centers are nearly aligned, otherwise a single L-bend whose
// turn order depends only on the dominant axis, never on randomness.
func buildPath(from, to Point) []Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if absInt(dx) < 2 || absInt(dy) < 2 {
		return []Point{from, to}
	}
	if absInt(dx) >= absInt(dy) {
		return []Point{from, {X: to.X, Y: from.Y}, to}
	}
	return []Point{from, {X: from.X, Y: to.Y}, to}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ValidateConnectivity reports whether every room is reachable from
// every other through the corridor graph.
func ValidateConnectivity(rooms []*Room, corridors []*Corridor) bool {
	if len(rooms) <= 1 {
		return true
	}

	adjacency := make(map[string][]string, len(rooms))
	for _, c := range corridors {
		adjacency[c.FromRoomID] = append(adjacency[c.FromRoomID], c.ToRoomID)
		adjacency[c.ToRoomID] = append(adjacency[c.ToRoomID], c.FromRoomID)
	}

	visited := map[string]bool{rooms[0].ID: true}
	queue := []string{rooms[0].ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[id] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, r := range rooms {
		if !visited[r.ID] {
			return false
		}
	}
	return true
}

// CarveIntoGrid rasterizes the corridor polyline into the collision
// grid, clearing a square of side 2*(width/2)+1 around every step of
// each Bresenham line segment.
func CarveIntoGrid(c *Corridor, grid *Grid) {
	half := c.Width / 2
	for i := 0; i+1 < len(c.Path); i++ {
		bresenham(c.Path[i], c.Path[i+1], func(x, y int) {
			for oy := -half; oy <= half; oy++ {
				for ox := -half; ox <= half; ox++ {
					if grid.InBounds(x+ox, y+oy) {
						grid.SetBlocked(x+ox, y+oy, false)
					}
				}
			}
		})
	}
}

// bresenham visits every integer cell on the line from a to b.
func bresenham(a, b Point, visit func(x, y int)) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
