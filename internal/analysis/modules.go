// Package analysis defines the module summaries the layout pipeline
// consumes. The summaries are produced upstream by static repository
// analysis; this package only models and loads them.
package analysis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Module categories assigned by the upstream classifier.
const (
	CategoryComponent  = "component"
	CategoryService    = "service"
	CategoryController = "controller"
	CategoryUtility    = "utility"
	CategoryRepository = "repository"
	CategoryConfig     = "config"
	CategoryTest       = "test"
	CategoryAsset      = "asset"
	CategoryTypes      = "types"
	CategoryRoot       = "root"
)

// ModuleSummary describes one classified unit of source code.
type ModuleSummary struct {
	Path       string   `json:"path" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Category   string   `json:"category"`
	FileCount  int      `json:"fileCount" validate:"gte=0"`
	TotalSize  int64    `json:"totalSize" validate:"gte=0"`
	Complexity int      `json:"complexity" validate:"gte=1,lte=10"`
	Imports    []string `json:"imports,omitempty"`
	Exports    []string `json:"exports,omitempty"`
}

// ModuleReport is the full analysis artifact for one repository at one
// commit, as written by the analyzer.
type ModuleReport struct {
	RepoID  string          `json:"repoId"`
	Commit  string          `json:"commit,omitempty"`
	Modules []ModuleSummary `json:"modules"`
}

// LoadReport loads a module report from a JSON file.
func LoadReport(path string) (*ModuleReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module report: %w", err)
	}
	var report ModuleReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse module report JSON: %w", err)
	}
	return &report, nil
}
