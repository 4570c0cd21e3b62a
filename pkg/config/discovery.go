package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crowdsentry/sentinel/pkg/logger"
)

// ScenarioInfo pairs a discovered scenario with the file it came from.
type ScenarioInfo struct {
	Path     string
	Scenario Scenario
}

// Discover finds scenario YAML files under dir. Unreadable or invalid
// files are skipped with a warning so one bad file does not hide the
// rest. A missing directory yields an empty list.
func Discover(dir string) ([]ScenarioInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenario directory: %w", err)
	}

	var found []ScenarioInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		sc, err := Load(path)
		if err != nil {
			logger.Warnf("skipping scenario %s: %v", path, err)
			continue
		}
		found = append(found, ScenarioInfo{Path: path, Scenario: *sc})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Scenario.Name < found[j].Scenario.Name
	})

	return found, nil
}
