// Package snapshot reads the host state snapshot from disk and watches it
// for pushes. A snapshot file is either a JSON object keyed by entity id or
// the REST-API array form, a list of states each carrying entity_id.
package snapshot

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
	"github.com/thimo234/ha-energy-chard/internal/util"
)

// Load reads and decodes a snapshot file.
func Load(path string) (model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}

// Decode parses snapshot JSON, accepting both the keyed-object and the
// array form.
func Decode(data []byte) (model.Snapshot, error) {
	var keyed model.Snapshot
	if err := sonic.Unmarshal(data, &keyed); err == nil {
		return keyed, nil
	}

	var states []model.EntityState
	if err := sonic.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := make(model.Snapshot, len(states))
	for _, st := range states {
		if st.EntityID == "" {
			util.LogDebug("Skipping snapshot entry without entity_id")
			continue
		}
		snap[st.EntityID] = st
	}
	return snap, nil
}
