package layout

import (
	"reflect"
	"testing"

	"github.com/mv-archer/repoworld-engine/internal/rng"
)

func roomAt(id string, x, y, w, h int) *Room {
	return &Room{
		ID:     id,
		Name:   id,
		Bounds: Bounds{X: x, Y: y, Width: w, Height: h},
		Center: Point{X: x + w/2, Y: y + h/2},
		Type:   RoomWorkspace,
	}
}

// spreadRooms lays rooms on a jittered grid so centers are in general
// position for the triangulation.
func spreadRooms(n int) []*Room {
	rooms := make([]*Room, n)
	for i := 0; i < n; i++ {
		x := (i % 3) * 20
		y := (i / 3) * 20
		rooms[i] = roomAt("room-"+string(rune('a'+i)), x+i%2, y+(i*3)%5, 6, 6)
	}
	return rooms
}

func TestNoCorridorsForZeroOrOneRoom(t *testing.T) {
	opts := DefaultOptions()
	g := rng.New("corridor-seed")
	if got := BuildCorridors(nil, g, NewIDAllocator(), opts); len(got) != 0 {
		t.Fatalf("expected no corridors for zero rooms, got %d", len(got))
	}
	one := []*Room{roomAt("room-1", 0, 0, 6, 6)}
	if got := BuildCorridors(one, g, NewIDAllocator(), opts); len(got) != 0 {
		t.Fatalf("expected no corridors for one room, got %d", len(got))
	}
}

func TestTwoRoomsGetOneStraightCorridor(t *testing.T) {
	opts := DefaultOptions()
	g := rng.New("pair-seed")
	rooms := []*Room{
		roomAt("room-1", 0, 10, 6, 6),
		roomAt("room-2", 30, 10, 6, 6),
	}
	corridors := BuildCorridors(rooms, g, NewIDAllocator(), opts)
	if len(corridors) != 1 {
		t.Fatalf("expected exactly 1 corridor, got %d", len(corridors))
	}
	c := corridors[0]
	if c.FromRoomID == c.ToRoomID {
		t.Fatalf("corridor connects a room to itself")
	}
	if c.FromRoomID != "room-1" || c.ToRoomID != "room-2" {
		t.Fatalf("corridor ids wrong: %s -> %s", c.FromRoomID, c.ToRoomID)
	}
	if len(c.Path) != 2 {
		t.Fatalf("aligned centers should give a 2-point path, got %v", c.Path)
	}
	if c.Path[0] != rooms[0].Center || c.Path[1] != rooms[1].Center {
		t.Fatalf("path does not connect the centers: %v", c.Path)
	}
}

func TestMSTEdgeCountWithoutExtras(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtraEdgeRatio = 0
	for _, n := range []int{3, 5, 9} {
		rooms := spreadRooms(n)
		corridors := BuildCorridors(rooms, rng.New("mst-seed"), NewIDAllocator(), opts)
		if len(corridors) != n-1 {
			t.Fatalf("%d rooms with no extras: expected %d corridors, got %d", n, n-1, len(corridors))
		}
		if !ValidateConnectivity(rooms, corridors) {
			t.Fatalf("%d rooms: MST corridors not connected", n)
		}
	}
}

func TestNoDuplicateOrSelfEdges(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtraEdgeRatio = 0.5
	rooms := spreadRooms(9)
	corridors := BuildCorridors(rooms, rng.New("dedupe-seed"), NewIDAllocator(), opts)

	seen := map[[2]string]bool{}
	for _, c := range corridors {
		if c.FromRoomID == c.ToRoomID {
			t.Fatalf("self edge on %s", c.FromRoomID)
		}
		key := [2]string{c.FromRoomID, c.ToRoomID}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			t.Fatalf("duplicate corridor between %s and %s", key[0], key[1])
		}
		seen[key] = true
	}
}

func TestExtrasAddLoops(t *testing.T) {
	rooms := spreadRooms(9)

	none := DefaultOptions()
	none.ExtraEdgeRatio = 0
	base := BuildCorridors(rooms, rng.New("loop-seed"), NewIDAllocator(), none)

	some := DefaultOptions()
	some.ExtraEdgeRatio = 0.5
	looped := BuildCorridors(rooms, rng.New("loop-seed"), NewIDAllocator(), some)

	if len(looped) <= len(base) {
		t.Fatalf("extra edges missing: %d corridors with ratio 0.5, %d with 0", len(looped), len(base))
	}
	if !ValidateConnectivity(rooms, looped) {
		t.Fatalf("looped graph not connected")
	}
}

func TestCollinearCentersStillConnect(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtraEdgeRatio = 0
	rooms := []*Room{
		roomAt("room-1", 0, 0, 6, 6),
		roomAt("room-2", 12, 0, 6, 6),
		roomAt("room-3", 24, 0, 6, 6),
		roomAt("room-4", 36, 0, 6, 6),
	}
	corridors := BuildCorridors(rooms, rng.New("line-seed"), NewIDAllocator(), opts)
	if !ValidateConnectivity(rooms, corridors) {
		t.Fatalf("collinear rooms not connected")
	}
	if len(corridors) != 3 {
		t.Fatalf("expected 3 corridors for 4 collinear rooms, got %d", len(corridors))
	}
}

func TestBuildPathShapes(t *testing.T) {
	// Dominant horizontal distance bends at the far x first.
	p := buildPath(Point{X: 10, Y: 10}, Point{X: 20, Y: 18})
	want := []Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 18}}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("horizontal-first path: got %v want %v", p, want)
	}

	// Dominant vertical distance bends at the far y first.
	p = buildPath(Point{X: 10, Y: 10}, Point{X: 14, Y: 30})
	want = []Point{{X: 10, Y: 10}, {X: 10, Y: 30}, {X: 14, Y: 30}}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("vertical-first path: got %v want %v", p, want)
	}

	// Near-aligned centers go straight.
	p = buildPath(Point{X: 10, Y: 10}, Point{X: 25, Y: 11})
	if len(p) != 2 {
		t.Fatalf("near-aligned path should be straight, got %v", p)
	}

	// The bend is a function of geometry alone, so it never changes.
	a := buildPath(Point{X: 3, Y: 4}, Point{X: 17, Y: 12})
	b := buildPath(Point{X: 3, Y: 4}, Point{X: 17, Y: 12})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("path construction not stable: %v vs %v", a, b)
	}
}

func TestValidateConnectivity(t *testing.T) {
	a := roomAt("room-1", 0, 0, 6, 6)
	b := roomAt("room-2", 20, 0, 6, 6)

	if !ValidateConnectivity([]*Room{a}, nil) {
		t.Fatalf("single room should count as connected")
	}
	if ValidateConnectivity([]*Room{a, b}, nil) {
		t.Fatalf("two rooms with no corridors reported connected")
	}
	c := &Corridor{ID: "corridor-1", FromRoomID: a.ID, ToRoomID: b.ID, Path: []Point{a.Center, b.Center}, Width: 2}
	if !ValidateConnectivity([]*Room{a, b}, []*Corridor{c}) {
		t.Fatalf("connected pair reported disconnected")
	}
}

func TestCarveIntoGrid(t *testing.T) {
	grid := NewGrid(20, 20, true)
	c := &Corridor{
		ID:         "corridor-1",
		FromRoomID: "room-1",
		ToRoomID:   "room-2",
		Path:       []Point{{X: 5, Y: 10}, {X: 15, Y: 10}},
		Width:      2,
	}
	CarveIntoGrid(c, grid)

	for x := 4; x <= 16; x++ {
		for y := 9; y <= 11; y++ {
			if grid.Blocked(x, y) {
				t.Fatalf("cell (%d,%d) should be carved", x, y)
			}
		}
	}
	if !grid.Blocked(10, 5) {
		t.Fatalf("cell far from the corridor was carved")
	}
	if !grid.Blocked(2, 10) {
		t.Fatalf("cell before the corridor start was carved")
	}
}

func TestCorridorDeterminism(t *testing.T) {
	opts := DefaultOptions()
	rooms := spreadRooms(7)
	a := BuildCorridors(rooms, rng.New("same-seed"), NewIDAllocator(), opts)
	b := BuildCorridors(rooms, rng.New("same-seed"), NewIDAllocator(), opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different corridors")
	}
}
