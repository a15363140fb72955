package update

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sandeepkv93/streakd/internal/store"
)

// importTasksFile reads a JSON array of task records and merges them
// into the store. Records are loosely typed on purpose: exports from
// older versions or other tools still import with defaults filled in.
func (m *Model) importTasksFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	var records []store.ImportRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	return m.Store.ImportBatch(records), nil
}

func (m *Model) exportTasksFile(path string) (int, error) {
	tasks := m.Store.ExportAll()
	raw, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	return len(tasks), nil
}
