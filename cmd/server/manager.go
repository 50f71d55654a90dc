package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mv-archer/repoworld-engine/internal/analysis"
	"github.com/mv-archer/repoworld-engine/internal/layout"
	"github.com/mv-archer/repoworld-engine/internal/protocol"
	"github.com/mv-archer/repoworld-engine/internal/ws"
)

// LayoutManager owns the current layout for one repository and
// regenerates it when a new commit arrives. Reads and regenerations may
// happen concurrently; the layout itself is immutable once generated.
type LayoutManager struct {
	mu      sync.RWMutex
	repoID  string
	commit  string
	modules []analysis.ModuleSummary
	width   int
	height  int
	options *layout.Options

	current *layout.Layout
	runID   string

	hub     *ws.Hub
	metrics *Metrics
}

// NewLayoutManager creates a manager with no layout yet; call Generate
// once before serving.
func NewLayoutManager(report *analysis.ModuleReport, width, height int, options *layout.Options, hub *ws.Hub, metrics *Metrics) *LayoutManager {
	return &LayoutManager{
		repoID:  report.RepoID,
		commit:  report.Commit,
		modules: report.Modules,
		width:   width,
		height:  height,
		options: options,
		hub:     hub,
		metrics: metrics,
	}
}

// Generate runs the pipeline for the given commit (empty keeps the
// report's commit), installs the result, and announces it to
// subscribers.
func (m *LayoutManager) Generate(commit string) (*protocol.LayoutSnapshot, error) {
	m.mu.RLock()
	if commit == "" {
		commit = m.commit
	}
	req := layout.GenerateRequest{
		RepoID:  m.repoID,
		Commit:  commit,
		Modules: m.modules,
		Width:   m.width,
		Height:  m.height,
		Options: m.options,
	}
	m.mu.RUnlock()

	start := time.Now()
	result, err := layout.Generate(req)
	if err != nil {
		m.metrics.GenerationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("generation for %s@%s failed: %w", req.RepoID, commit, err)
	}
	m.metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	m.metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	runID := uuid.NewString()

	m.mu.Lock()
	m.commit = commit
	m.current = result
	m.runID = runID
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	log.Printf("generated layout %s for %s@%s: %d rooms, %d corridors, seed %s",
		runID, req.RepoID, commit, len(result.Rooms), len(result.Corridors), result.Seed)

	if err := m.hub.Publish("layoutGenerated", protocol.LayoutGenerated{
		RunID:         runID,
		RepoID:        req.RepoID,
		Commit:        commit,
		Seed:          result.Seed,
		RoomCount:     len(result.Rooms),
		CorridorCount: len(result.Corridors),
	}); err != nil {
		log.Printf("failed to publish layoutGenerated: %v", err)
	}

	return snapshot, nil
}

// Snapshot returns the current layout, or nil when none was generated.
func (m *LayoutManager) Snapshot() *protocol.LayoutSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *LayoutManager) snapshotLocked() *protocol.LayoutSnapshot {
	if m.current == nil {
		return nil
	}

	rooms := make([]protocol.RoomLite, len(m.current.Rooms))
	for i, r := range m.current.Rooms {
		rooms[i] = protocol.RoomLite{
			ID:         r.ID,
			Name:       r.Name,
			X:          r.Bounds.X,
			Y:          r.Bounds.Y,
			Width:      r.Bounds.Width,
			Height:     r.Bounds.Height,
			CenterX:    r.Center.X,
			CenterY:    r.Center.Y,
			RoomType:   string(r.Type),
			ModuleType: r.ModuleType,
			ModulePath: r.ModulePath,
			Complexity: r.Complexity,
		}
	}

	corridors := make([]protocol.CorridorLite, len(m.current.Corridors))
	for i, c := range m.current.Corridors {
		path := make([]protocol.PointLite, len(c.Path))
		for j, p := range c.Path {
			path[j] = protocol.PointLite{X: p.X, Y: p.Y}
		}
		corridors[i] = protocol.CorridorLite{
			ID:         c.ID,
			FromRoomID: c.FromRoomID,
			ToRoomID:   c.ToRoomID,
			Path:       path,
			Width:      c.Width,
		}
	}

	tm := m.current.Tilemap
	layers := make([]protocol.TileLayerLite, len(tm.Layers))
	for i, l := range tm.Layers {
		layers[i] = protocol.TileLayerLite{Name: l.Name, Data: l.Data}
	}

	return &protocol.LayoutSnapshot{
		RunID:           m.runID,
		RepoID:          m.repoID,
		Commit:          m.commit,
		Seed:            m.current.Seed,
		MapWidth:        tm.Width,
		MapHeight:       tm.Height,
		TileWidth:       tm.TileWidth,
		TileHeight:      tm.TileHeight,
		Rooms:           rooms,
		Corridors:       corridors,
		Layers:          layers,
		Collision:       tm.Collision,
		Properties:      tm.Properties,
		ProtocolVersion: protocol.ProtocolVersion,
	}
}
