// Package layout turns a repository's module summaries into a 2D
// building layout: a binary space partition of the board, one room per
// module, a connected corridor graph between room centers, and a
// rasterized tilemap. Generation is deterministic: the same seed and
// inputs always produce the same layout.
package layout

import "strconv"

// Point is an integer grid position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is an integer rectangle. Width and height are positive for any
// bounds that participate in a layout.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns width*height.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}

// ContainsBounds reports whether inner lies fully inside b.
func (b Bounds) ContainsBounds(inner Bounds) bool {
	return inner.X >= b.X && inner.Y >= b.Y &&
		inner.X+inner.Width <= b.X+b.Width &&
		inner.Y+inner.Height <= b.Y+b.Height
}

// Overlaps reports whether the two rectangles share any cell.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.X < other.X+other.Width && other.X < b.X+b.Width &&
		b.Y < other.Y+other.Height && other.Y < b.Y+b.Height
}

// Shrink returns b reduced by margin on all four sides.
func (b Bounds) Shrink(margin int) Bounds {
	return Bounds{
		X:      b.X + margin,
		Y:      b.Y + margin,
		Width:  b.Width - margin*2,
		Height: b.Height - margin*2,
	}
}

// RoomType classifies a room for the rendering client.
type RoomType string

const (
	RoomWorkspace  RoomType = "workspace"
	RoomLibrary    RoomType = "library"
	RoomVault      RoomType = "vault"
	RoomLaboratory RoomType = "laboratory"
	RoomArchive    RoomType = "archive"
	RoomEntrance   RoomType = "entrance"
)

// Door marks an opening on a room edge. Stored as opaque metadata for
// downstream consumers; the pipeline itself does not cut doors.
type Door struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

// Decoration is a furnishing hint inside a room.
type Decoration struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// Room is one placed room. Bounds lie strictly inside the source leaf,
// shrunk by the configured margin. Rooms are immutable once placed;
// corridors refer to them by ID only.
type Room struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Bounds      Bounds       `json:"bounds"`
	Center      Point        `json:"center"`
	Type        RoomType     `json:"roomType"`
	ModuleType  string       `json:"moduleType,omitempty"`
	ModulePath  string       `json:"modulePath,omitempty"`
	FileCount   int          `json:"fileCount,omitempty"`
	TotalSize   int64        `json:"totalSize,omitempty"`
	Complexity  int          `json:"complexity,omitempty"`
	Doors       []Door       `json:"doors"`
	Decorations []Decoration `json:"decorations"`
}

// Corridor connects two rooms with a concrete path. FromRoomID and
// ToRoomID always differ, and no unordered room pair appears twice.
type Corridor struct {
	ID         string  `json:"id"`
	FromRoomID string  `json:"fromRoomId"`
	ToRoomID   string  `json:"toRoomId"`
	Path       []Point `json:"path"`
	Width      int     `json:"width"`
}

// PartitionNode is one node of the binary space partition. A node is a
// leaf iff it has no children; a non-leaf's two children exactly tile
// its bounds.
type PartitionNode struct {
	Bounds Bounds         `json:"bounds"`
	Depth  int            `json:"depth"`
	Leaf   bool           `json:"isLeaf"`
	Left   *PartitionNode `json:"left,omitempty"`
	Right  *PartitionNode `json:"right,omitempty"`
	Room   *Room          `json:"room,omitempty"`
}

// Options are the tuning knobs for one generation run. A zero field
// means "use the default": an explicit zero cannot be requested
// through Generate, so a caller who wants, say, no loop edges must
// pass a ratio small enough to floor to zero extra edges rather than
// 0 itself.
type Options struct {
	MinRoomSize    int     `json:"minRoomSize"`
	MaxRoomSize    int     `json:"maxRoomSize"`
	SplitRatioMin  float64 `json:"splitRatioMin"`
	SplitRatioMax  float64 `json:"splitRatioMax"`
	MaxDepth       int     `json:"maxDepth"`
	RoomMargin     int     `json:"roomMargin"`
	CorridorWidth  int     `json:"corridorWidth"`
	ExtraEdgeRatio float64 `json:"extraEdgeRatio"`
}

// DefaultOptions returns the standard tuning values.
func DefaultOptions() Options {
	return Options{
		MinRoomSize:    6,
		MaxRoomSize:    20,
		SplitRatioMin:  0.45,
		SplitRatioMax:  0.55,
		MaxDepth:       6,
		RoomMargin:     1,
		CorridorWidth:  2,
		ExtraEdgeRatio: 0.3,
	}
}

// IDAllocator hands out human-readable room and corridor identifiers.
// One allocator is created per generation run, so concurrent runs never
// interfere and ids always start from 1.
type IDAllocator struct {
	rooms     int
	corridors int
}

// NewIDAllocator returns a fresh allocator with both counters at zero.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// NextRoomID returns the next room identifier.
func (a *IDAllocator) NextRoomID() string {
	a.rooms++
	return "room-" + strconv.Itoa(a.rooms)
}

// NextCorridorID returns the next corridor identifier.
func (a *IDAllocator) NextCorridorID() string {
	a.corridors++
	return "corridor-" + strconv.Itoa(a.corridors)
}
