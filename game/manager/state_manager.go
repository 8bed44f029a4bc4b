package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string    `json:"session_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
}

type GameStats struct {
	HighScore int          `json:"high_score"`
	History   []GameRecord `json:"history"`
}

// StateManager keeps the high score table on disk. An empty filename keeps
// everything in memory.
type StateManager struct {
	filename  string
	sessionID string
	startTime time.Time
	stats     GameStats
}

func NewStateManager(filename string) *StateManager {
	return &StateManager{
		filename:  filename,
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		stats: GameStats{
			History: make([]GameRecord, 0),
		},
	}
}

// SessionID identifies the current game in the history.
func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// LoadStats reads the score table. A missing file is an empty table.
func (sm *StateManager) LoadStats() error {
	if sm.filename == "" {
		return nil
	}

	data, err := os.ReadFile(sm.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read scores %s", sm.filename)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decode scores %s", sm.filename)
	}
	if stats.History == nil {
		stats.History = make([]GameRecord, 0)
	}
	sm.stats = stats
	return nil
}

func (sm *StateManager) SaveStats() error {
	if sm.filename == "" {
		return nil
	}

	if dir := filepath.Dir(sm.filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create scores directory %s", dir)
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode scores")
	}

	if err := os.WriteFile(sm.filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write scores %s", sm.filename)
	}
	return nil
}

// RecordGame appends the finished game to the history, raises the high score
// if needed and saves the table. It reports whether the score is a new high.
func (sm *StateManager) RecordGame(score, length int, end time.Time) (bool, error) {
	sm.stats.History = append(sm.stats.History, GameRecord{
		SessionID: sm.sessionID,
		StartTime: sm.startTime,
		EndTime:   end,
		Score:     score,
		Length:    length,
	})

	isHigh := score > sm.stats.HighScore
	if isHigh {
		sm.stats.HighScore = score
	}
	return isHigh, sm.SaveStats()
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	return sm.stats.History
}
