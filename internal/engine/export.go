package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/charlieanna/idlecampus/internal/progress"
	"github.com/charlieanna/idlecampus/internal/store"
)

// exportSchema validates imported profiles before they touch state. It
// checks the envelope and the shape of the progress object; semantic
// repair (clamping, re-derivation) happens in the snapshot decoder.
const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "userId", "progress", "lastUpdated"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "userId": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "progress": {
      "type": "object",
      "properties": {
        "totalXP": {"type": "integer", "minimum": 0},
        "currentLevel": {"type": "integer", "minimum": 1},
        "challengeProgress": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "properties": {
              "challengeId": {"type": "string"},
              "status": {"type": "string"},
              "levelsCompleted": {"type": "array", "items": {"type": "integer"}},
              "bestScore": {"type": "integer"},
              "hintsUsed": {"type": "integer"},
              "solutionViewed": {"type": "boolean"}
            }
          }
        },
        "unlockedChallenges": {"type": "array", "items": {"type": "string"}},
        "badges": {"type": "array", "items": {"type": "string"}},
        "currentStreak": {"type": "integer", "minimum": 0},
        "longestStreak": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var compiledExportSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(exportSchema))
	if err != nil {
		panic(fmt.Sprintf("parse export schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("export.json", doc); err != nil {
		panic(fmt.Sprintf("add export schema: %v", err))
	}
	sch, err := c.Compile("export.json")
	if err != nil {
		panic(fmt.Sprintf("compile export schema: %v", err))
	}
	return sch
}

// ExportJSON serializes the current profile as the versioned blob, the
// same shape the store persists and the mirror ships.
func (e *Engine) ExportJSON() ([]byte, error) {
	data := progress.ToSnapshot(e.state, e.now())
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export progress: %w", err)
	}
	return out, nil
}

// ImportJSON replaces the current profile with an exported blob. The
// payload is schema-validated first; unknown versions then go through the
// same forward migration as a persisted snapshot. The imported profile is
// persisted before returning.
func (e *Engine) ImportJSON(ctx context.Context, raw []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("import progress: malformed JSON: %w", err)
	}
	if err := compiledExportSchema.Validate(inst); err != nil {
		return fmt.Errorf("import progress: %w", err)
	}

	var data store.SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("import progress: %w", err)
	}

	imported := progress.FromSnapshot(&data)
	if imported.UserID == "" {
		imported.UserID = e.state.UserID
	}
	e.state = imported
	return e.persist(ctx)
}
