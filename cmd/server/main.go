package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/mv-archer/repoworld-engine/internal/analysis"
	"github.com/mv-archer/repoworld-engine/internal/config"
	"github.com/mv-archer/repoworld-engine/internal/layout"
	"github.com/mv-archer/repoworld-engine/internal/ws"
)

// optionsFromConfig translates the YAML generation overrides into
// pipeline options. Zero values fall through to the pipeline defaults.
func optionsFromConfig(gen config.GenerationConfig) *layout.Options {
	if gen == (config.GenerationConfig{}) {
		return nil
	}
	return &layout.Options{
		MinRoomSize:    gen.MinRoomSize,
		MaxRoomSize:    gen.MaxRoomSize,
		SplitRatioMin:  gen.SplitRatioMin,
		SplitRatioMax:  gen.SplitRatioMax,
		MaxDepth:       gen.MaxDepth,
		RoomMargin:     gen.RoomMargin,
		CorridorWidth:  gen.CorridorWidth,
		ExtraEdgeRatio: gen.ExtraEdgeRatio,
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the service configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	report, err := analysis.LoadReport(cfg.World.ModulesFile)
	if err != nil {
		log.Fatalf("Failed to load module report: %v", err)
	}
	log.Printf("loaded %d modules for %s@%s", len(report.Modules), report.RepoID, report.Commit)

	metrics := NewMetrics()
	hub := ws.NewHub()
	manager := NewLayoutManager(report, cfg.World.Width, cfg.World.Height, optionsFromConfig(cfg.Generation), hub, metrics)

	if _, err := manager.Generate(""); err != nil {
		log.Fatalf("Initial generation failed: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/layout", countRequests(metrics, "layout", handleLayout(manager)))
	mux.HandleFunc("/api/generate", countRequests(metrics, "generate", handleGenerate(manager)))
	mux.HandleFunc("/ws", handleWS(hub))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", countRequests(metrics, "healthz", handleHealth))

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
