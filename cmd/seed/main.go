// Command seed generates synthetic tracking fixtures for the demo user and
// writes them in the file-storage format, so the server starts with data.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

func main() {
	var (
		dataDir = flag.String("dir", "data", "output directory")
		userID  = flag.String("user", "u1", "user ID to seed")
		days    = flag.Int("days", 30, "days of history to generate")
		seed    = flag.Int64("seed", 1, "random seed (deterministic fixtures)")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	now := time.Now()

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("failed to create %s: %v", *dataDir, err)
	}

	var tools []internal.UserTool
	for _, p := range toolpreset.All() {
		tools = append(tools, internal.UserTool{
			ToolID:       p.ID,
			UserID:       *userID,
			ToolName:     p.Name,
			ToolCategory: string(p.Type),
			Settings:     p.DefaultSettings,
			CreatedAt:    now.AddDate(0, 0, -*days),
		})
	}

	var entries []internal.TrackingEntry
	for offset := 0; offset < *days; offset++ {
		day := now.AddDate(0, 0, -offset)
		for _, t := range tools {
			// Miss roughly one day in ten per tool so streaks stay plausible.
			if offset > 0 && rng.Intn(10) == 0 {
				continue
			}
			at := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.Intn(12), rng.Intn(60), 0, 0, day.Location())
			entries = append(entries, internal.TrackingEntry{
				ID:        uuid.NewString(),
				UserID:    *userID,
				ToolID:    t.ToolID,
				Timestamp: at,
				Data:      payloadFor(toolpreset.TypeOf(t.ToolID), rng),
				CreatedAt: at,
			})
		}
	}

	writeJSON(filepath.Join(*dataDir, "users.json"), []internal.User{
		{ID: *userID, Token: "MOCK-TOKEN", Name: "Demo User"},
	})
	writeJSON(filepath.Join(*dataDir, "user_tools.json"), tools)
	writeJSON(filepath.Join(*dataDir, "entries.json"), entries)

	log.Printf("seeded %d entries across %d tools for user %s", len(entries), len(tools), *userID)
}

func payloadFor(toolType toolpreset.ToolType, rng *rand.Rand) map[string]any {
	switch toolType {
	case toolpreset.TypeGlucose:
		return map[string]any{"glucose_level": 75 + rng.Intn(130)}
	case toolpreset.TypeBloodPressure:
		return map[string]any{
			"systolic":  105 + rng.Intn(45),
			"diastolic": 65 + rng.Intn(30),
		}
	case toolpreset.TypeMood:
		return map[string]any{
			"mood":   1 + rng.Intn(10),
			"energy": 1 + rng.Intn(10),
		}
	case toolpreset.TypePain:
		return map[string]any{"pain_level": rng.Intn(11)}
	case toolpreset.TypeMedication:
		return map[string]any{"adherence": rng.Intn(10) < 9}
	default:
		return map[string]any{}
	}
}

func writeJSON(path string, v any) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to write %s: %v", path, err)
	}
}
