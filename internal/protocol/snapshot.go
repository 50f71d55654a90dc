// Package protocol defines the wire shapes served to rendering clients.
package protocol

const ProtocolVersion = "1"

// PointLite is a path point on the wire.
type PointLite struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomLite is the client-facing view of one room.
type RoomLite struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CenterX    int    `json:"centerX"`
	CenterY    int    `json:"centerY"`
	RoomType   string `json:"roomType"`
	ModuleType string `json:"moduleType,omitempty"`
	ModulePath string `json:"modulePath,omitempty"`
	Complexity int    `json:"complexity,omitempty"`
}

// CorridorLite is the client-facing view of one corridor.
type CorridorLite struct {
	ID         string      `json:"id"`
	FromRoomID string      `json:"fromRoomId"`
	ToRoomID   string      `json:"toRoomId"`
	Path       []PointLite `json:"path"`
	Width      int         `json:"width"`
}

// TileLayerLite is one named tile grid, flat-indexed y*width+x.
type TileLayerLite struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// LayoutSnapshot is the full state a client needs to draw the building.
type LayoutSnapshot struct {
	RunID           string          `json:"runId"`
	RepoID          string          `json:"repoId"`
	Commit          string          `json:"commit,omitempty"`
	Seed            string          `json:"seed"`
	MapWidth        int             `json:"mapWidth"`
	MapHeight       int             `json:"mapHeight"`
	TileWidth       int             `json:"tileWidth"`
	TileHeight      int             `json:"tileHeight"`
	Rooms           []RoomLite      `json:"rooms"`
	Corridors       []CorridorLite  `json:"corridors"`
	Layers          []TileLayerLite `json:"layers"`
	Collision       []bool          `json:"collision"`
	Properties      map[string]any  `json:"properties"`
	ProtocolVersion string          `json:"protocolVersion"`
}
