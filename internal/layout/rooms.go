package layout

import (
	"sort"

	"github.com/mv-archer/repoworld-engine/internal/analysis"
	"github.com/mv-archer/repoworld-engine/internal/rng"
)

// roomTypeFor maps a module category to the room type shown to clients.
func roomTypeFor(category string) RoomType {
	switch category {
	case analysis.CategoryComponent, analysis.CategoryService, analysis.CategoryController:
		return RoomWorkspace
	case analysis.CategoryUtility, analysis.CategoryRepository:
		return RoomLibrary
	case analysis.CategoryConfig:
		return RoomVault
	case analysis.CategoryTest:
		return RoomLaboratory
	case analysis.CategoryAsset, analysis.CategoryTypes:
		return RoomArchive
	case analysis.CategoryRoot:
		return RoomEntrance
	default:
		return RoomWorkspace
	}
}

// PlaceRooms assigns modules to partition leaves and sizes a room inside
// each assigned leaf. Complex modules are placed first so they get the
// first pick of the shuffled leaves. Leaves whose interior cannot hold a
// minimum-size room are never paired with a module, so a module only
// goes without a room when the whole board lacks enough usable leaves.
// When spare usable leaves remain, one extra Entrance room is placed.
func PlaceRooms(root *PartitionNode, modules []analysis.ModuleSummary, g *rng.Generator, ids *IDAllocator, opts Options) []*Room {
	sorted := make([]analysis.ModuleSummary, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Complexity > sorted[j].Complexity
	})

	leaves := rng.Shuffle(g, root.Leaves())

	usable := make([]*PartitionNode, 0, len(leaves))
	for _, leaf := range leaves {
		interior := leaf.Bounds.Shrink(opts.RoomMargin)
		if interior.Width >= opts.MinRoomSize && interior.Height >= opts.MinRoomSize {
			usable = append(usable, leaf)
		}
	}

	count := len(sorted)
	if len(usable) < count {
		count = len(usable)
	}

	rooms := make([]*Room, 0, count+1)
	for i := 0; i < count; i++ {
		leaf := usable[i]
		mod := sorted[i]
		interior := leaf.Bounds.Shrink(opts.RoomMargin)

		// Complexity 1..10 interpolates between min and max room size,
		// with a small bonus for file-heavy modules.
		t := float64(mod.Complexity-1) / 9.0
		size := opts.MinRoomSize + int(t*float64(opts.MaxRoomSize-opts.MinRoomSize))
		bonus := mod.FileCount / 10
		if bonus > 2 {
			bonus = 2
		}
		size += bonus

		w := size
		if w > interior.Width {
			w = interior.Width
		}
		h := size
		if h > interior.Height {
			h = interior.Height
		}

		x := interior.X + g.IntBetween(0, interior.Width-w)
		y := interior.Y + g.IntBetween(0, interior.Height-h)

		room := &Room{
			ID:          ids.NextRoomID(),
			Name:        mod.Name,
			Bounds:      Bounds{X: x, Y: y, Width: w, Height: h},
			Center:      Point{X: x + w/2, Y: y + h/2},
			Type:        roomTypeFor(mod.Category),
			ModuleType:  mod.Category,
			ModulePath:  mod.Path,
			FileCount:   mod.FileCount,
			TotalSize:   mod.TotalSize,
			Complexity:  mod.Complexity,
			Doors:       []Door{},
			Decorations: []Decoration{},
		}
		leaf.Room = room
		rooms = append(rooms, room)
	}

	if count < len(usable) {
		rooms = append(rooms, placeEntrance(usable[count], ids, opts))
	}

	return rooms
}

// placeEntrance puts a fixed-size entrance room, centered, in a spare
// usable leaf.
func placeEntrance(leaf *PartitionNode, ids *IDAllocator, opts Options) *Room {
	interior := leaf.Bounds.Shrink(opts.RoomMargin)

	w := opts.MinRoomSize + 4
	if w > interior.Width {
		w = interior.Width
	}
	h := opts.MinRoomSize + 4
	if h > interior.Height {
		h = interior.Height
	}
	x := interior.X + (interior.Width-w)/2
	y := interior.Y + (interior.Height-h)/2

	room := &Room{
		ID:          ids.NextRoomID(),
		Name:        "Entrance",
		Bounds:      Bounds{X: x, Y: y, Width: w, Height: h},
		Center:      Point{X: x + w/2, Y: y + h/2},
		Type:        RoomEntrance,
		Doors:       []Door{},
		Decorations: []Decoration{},
	}
	leaf.Room = room
	return room
}
