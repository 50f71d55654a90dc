package layout

import (
	"fmt"
	"log"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/mv-archer/repoworld-engine/internal/analysis"
	"github.com/mv-archer/repoworld-engine/internal/rng"
)

var validate = validator.New()

// GenerateRequest is one full pipeline invocation.
type GenerateRequest struct {
	RepoID  string                   `json:"repoId" validate:"required"`
	Commit  string                   `json:"commit"`
	Modules []analysis.ModuleSummary `json:"modules" validate:"dive"`
	Width   int                      `json:"width" validate:"gt=0"`
	Height  int                      `json:"height" validate:"gt=0"`
	Options *Options                 `json:"options,omitempty"`
}

// Layout is the complete generated artifact. Everything in it is
// immutable once returned.
type Layout struct {
	Seed      string         `json:"seed"`
	Root      *PartitionNode `json:"partitionTree"`
	Rooms     []*Room        `json:"rooms"`
	Corridors []*Corridor    `json:"corridors"`
	Tilemap   *Tilemap       `json:"tilemap"`
}

// mergeOptions fills unset caller options with defaults and raises the
// partition depth when the module count needs more leaves than the
// default depth can provide. Unset means zero, so a caller cannot
// force a field to its zero value; see the Options doc.
func mergeOptions(caller *Options, moduleCount int) Options {
	opts := DefaultOptions()
	if caller != nil {
		if caller.MinRoomSize > 0 {
			opts.MinRoomSize = caller.MinRoomSize
		}
		if caller.MaxRoomSize > 0 {
			opts.MaxRoomSize = caller.MaxRoomSize
		}
		if caller.SplitRatioMin > 0 {
			opts.SplitRatioMin = caller.SplitRatioMin
		}
		if caller.SplitRatioMax > 0 {
			opts.SplitRatioMax = caller.SplitRatioMax
		}
		if caller.MaxDepth > 0 {
			opts.MaxDepth = caller.MaxDepth
		}
		if caller.RoomMargin > 0 {
			opts.RoomMargin = caller.RoomMargin
		}
		if caller.CorridorWidth > 0 {
			opts.CorridorWidth = caller.CorridorWidth
		}
		if caller.ExtraEdgeRatio > 0 {
			opts.ExtraEdgeRatio = caller.ExtraEdgeRatio
		}
	}

	needed := int(math.Ceil(math.Log2(float64(moduleCount+1)))) + 1
	if needed > opts.MaxDepth {
		opts.MaxDepth = needed
	}
	return opts
}

// Generate runs the full pipeline: seed derivation, partitioning, room
// placement, corridor construction, and tilemap rasterization. For
// fixed inputs the result is identical on every invocation, in any
// process.
func Generate(req GenerateRequest) (*Layout, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid generate request: %w", err)
	}

	seed := rng.FromRepoMetadata(req.RepoID, req.Commit)
	opts := mergeOptions(req.Options, len(req.Modules))

	g := rng.New(seed)
	ids := NewIDAllocator()

	root := BuildPartition(req.Width, req.Height, g, opts)
	rooms := PlaceRooms(root, req.Modules, g, ids, opts)
	corridors := BuildCorridors(rooms, g, ids, opts)

	if !ValidateConnectivity(rooms, corridors) {
		log.Printf("warning: corridor graph for seed %s is disconnected (%d rooms, %d corridors)",
			seed, len(rooms), len(corridors))
	}

	return &Layout{
		Seed:      seed,
		Root:      root,
		Rooms:     rooms,
		Corridors: corridors,
		Tilemap:   BuildTilemap(req.Width, req.Height, rooms, corridors),
	}, nil
}
