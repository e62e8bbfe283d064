package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"isolation/engine"
)

type AgentRecord struct {
	ID        int
	Name      string
	Kind      string
	Heuristic string
	Method    string
	Iterative bool
	Depth     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentRecord.ID of the player moving first
	Agent2 int // AgentRecord.ID
	Loser  string
	Reason engine.Reason
	engine.GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one tournament under dir.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
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

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	header := []string{"id", "name", "kind", "heuristic", "method", "iterative", "depth"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Kind,
			r.Heuristic,
			r.Method,
			strconv.FormatBool(r.Iterative),
			strconv.Itoa(r.Depth),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "loser", "reason", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.StartingPlayer,
			r.Winner,
			r.Loser,
			string(r.Reason),
			strconv.Itoa(r.TotalMoves),
			r.StartTime.Format(time.RFC3339Nano),
			r.EndTime.Format(time.RFC3339Nano),
			r.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "row", "col", "time_left", "method", "iterative", "depth", "nodes", "duration", "timed_out"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Move.Row),
			strconv.Itoa(r.Move.Col),
			r.TimeLeft.String(),
			string(r.Method),
			strconv.FormatBool(r.Iterative),
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Nodes),
			r.Duration.String(),
			strconv.FormatBool(r.TimedOut),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
