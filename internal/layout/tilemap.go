package layout

// Grid is a flat boolean occupancy grid indexed y*width+x, matching the
// tilemap's collision layer. True means blocked.
type Grid struct {
	Width  int
	Height int
	Cells  []bool
}

// NewGrid returns a grid with every cell set to blocked.
func NewGrid(width, height int, blocked bool) *Grid {
	cells := make([]bool, width*height)
	if blocked {
		for i := range cells {
			cells[i] = true
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Blocked reports whether (x,y) is blocked. Out-of-bounds counts as blocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Cells[y*g.Width+x]
}

// SetBlocked sets the blocked state of (x,y).
func (g *Grid) SetBlocked(x, y int, blocked bool) {
	g.Cells[y*g.Width+x] = blocked
}

// TileSize is the pixel size of one tile on the rendering client.
const TileSize = 32

// Layer is one named tile grid of the tilemap, flat-indexed y*width+x.
type Layer struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// Tilemap is the rasterized form of a layout: a collision bitmap plus
// derived visual layers. It holds no state of its own and introduces no
// randomness.
type Tilemap struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	TileWidth  int            `json:"tileWidth"`
	TileHeight int            `json:"tileHeight"`
	Layers     []Layer        `json:"layers"`
	Collision  []bool         `json:"collision"`
	Properties map[string]any `json:"properties"`
}

// BuildTilemap rasterizes rooms and corridors onto a width x height
// grid. Room rectangles and corridor paths are cleared in the collision
// bitmap; the ground layer marks passable cells and the walls layer
// marks blocked cells bordering a passable one.
func BuildTilemap(width, height int, rooms []*Room, corridors []*Corridor) *Tilemap {
	grid := NewGrid(width, height, true)

	for _, room := range rooms {
		for y := room.Bounds.Y; y < room.Bounds.Y+room.Bounds.Height; y++ {
			for x := room.Bounds.X; x < room.Bounds.X+room.Bounds.Width; x++ {
				if grid.InBounds(x, y) {
					grid.SetBlocked(x, y, false)
				}
			}
		}
	}

	for _, corridor := range corridors {
		CarveIntoGrid(corridor, grid)
	}

	ground := make([]int, width*height)
	walls := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !grid.Blocked(x, y) {
				ground[idx] = 1
				continue
			}
			if !grid.Blocked(x-1, y) || !grid.Blocked(x+1, y) ||
				!grid.Blocked(x, y-1) || !grid.Blocked(x, y+1) {
				walls[idx] = 1
			}
		}
	}

	return &Tilemap{
		Width:      width,
		Height:     height,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Layers: []Layer{
			{Name: "ground", Data: ground},
			{Name: "walls", Data: walls},
		},
		Collision: grid.Cells,
		Properties: map[string]any{
			"roomCount":     len(rooms),
			"corridorCount": len(corridors),
		},
	}
}
