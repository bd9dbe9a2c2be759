package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// CommitWatermark rewrites the JSON configuration artifact at path, replacing
// only state.lastDate with at (RFC3339, UTC). Every other field of the
// artifact, including fields this application does not model, is carried over
// unchanged.
//
// The watermark is the single durable checkpoint of the pipeline: it must be
// written exactly once per run, after every new statement has been dispatched.
// Any failure is wrapped in [ErrPersistence] so the caller can report it
// distinctly from processing failures.
func CommitWatermark(path string, at time.Time) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read artifact: %v", ErrPersistence, err)
	}

	var doc map[string]json.RawMessage
	if err = json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: decode artifact: %v", ErrPersistence, err)
	}

	state := make(map[string]json.RawMessage)
	if rawState, ok := doc["state"]; ok {
		if err = json.Unmarshal(rawState, &state); err != nil {
			return fmt.Errorf("%w: decode artifact state: %v", ErrPersistence, err)
		}
	}

	lastDate, err := json.Marshal(at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: encode watermark: %v", ErrPersistence, err)
	}
	state["lastDate"] = lastDate

	newState, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode artifact state: %v", ErrPersistence, err)
	}
	doc["state"] = newState

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode artifact: %v", ErrPersistence, err)
	}

	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write artifact: %v", ErrPersistence, err)
	}

	return nil
}
