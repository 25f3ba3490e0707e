// Package save persists lightweight progress (best score, furthest level)
// across runs. Storage failures degrade to an in-memory record; the game
// never refuses to run because the save location is unavailable.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "global"
)

// Progress is the persisted record.
type Progress struct {
	BestScore    int `yaml:"bestScore"`
	HighestLevel int `yaml:"highestLevel"`
}

// Store loads and saves Progress through gdata's per-platform app storage.
// A nil manager means degraded (memory-only) mode.
type Store struct {
	manager  *gdata.Manager
	progress Progress
}

// Open creates a store for the given app name and loads any existing record.
func Open(appName string) *Store {
	s := &Store{progress: Progress{HighestLevel: 1}}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("save: open storage: %v (progress will not persist)", err)
		return s
	}
	s.manager = manager

	if err := s.load(); err != nil {
		log.Printf("save: load progress: %v (starting fresh)", err)
	}
	return s
}

// Progress returns the current record.
func (s *Store) Progress() Progress { return s.progress }

// Record folds a finished frame's score and level into the record and
// persists when anything improved.
func (s *Store) Record(score, level int) {
	changed := false
	if score > s.progress.BestScore {
		s.progress.BestScore = score
		changed = true
	}
	if level > s.progress.HighestLevel {
		s.progress.HighestLevel = level
		changed = true
	}
	if !changed {
		return
	}
	if err := s.save(); err != nil {
		log.Printf("save: write progress: %v", err)
	}
}

func (s *Store) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshal progress: %w", err)
	}
	if p.HighestLevel < 1 {
		p.HighestLevel = 1
	}
	s.progress = p
	return nil
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
