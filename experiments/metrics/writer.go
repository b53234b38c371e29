package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"capture/heuristic"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a directory for the experiment under root, named by
// the current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteProfiles(profiles []heuristic.Profile) error {
	header := []string{
		"name", "recency", "recency_penalty", "recency_window", "food", "food_candidates", "food_shape",
		"food_distance", "ghost_penalty", "threat", "threat_weight", "threat_radius", "offense_stop_penalty",
		"invader", "chase", "intercept", "intercept_weight", "border_candidates", "pacman_penalty",
	}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		o, d := p.Offense, p.Defense
		rows = append(rows, []string{
			p.Name,
			o.Recency.String(),
			formatFloat(o.RecencyPenalty),
			strconv.Itoa(o.RecencyWindow),
			formatFloat(o.Food),
			strconv.Itoa(o.FoodCandidates),
			o.FoodShape.String(),
			formatFloat(o.FoodDistance),
			formatFloat(o.GhostPenalty),
			o.Threat.String(),
			formatFloat(o.ThreatWeight),
			strconv.Itoa(o.ThreatRadius),
			formatFloat(o.StopPenalty),
			formatFloat(d.Invader),
			formatFloat(d.Chase),
			d.Intercept.String(),
			formatFloat(d.InterceptWeight),
			strconv.Itoa(d.BorderCandidates),
			formatFloat(d.PacmanPenalty),
		})
	}
	return w.write("profiles.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_id", "red", "blue", "winner", "score", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.MatchID,
			record.Red,
			record.Blue,
			record.Winner,
			strconv.Itoa(record.Score),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "role", "action", "duration", "candidates", "best_score", "cache_hits", "cache_misses", "cache_size"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Role,
			record.Action,
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			formatFloat(record.BestScore),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.CacheMisses),
			strconv.Itoa(record.CacheSize),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// formatFloat writes -Inf and +Inf the way strconv.ParseFloat reads them.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
