package main

import (
	"time"

	"classic-snake/game"
	"classic-snake/game/manager"

	"github.com/rs/zerolog"
)

// scoreKeeper records finished games in the score table.
type scoreKeeper struct {
	state *manager.StateManager
	log   zerolog.Logger
	now   func() time.Time
}

func newScoreKeeper(state *manager.StateManager, log zerolog.Logger) *scoreKeeper {
	return &scoreKeeper{state: state, log: log, now: time.Now}
}

func (k *scoreKeeper) FoodEaten(s game.Snapshot) {
	if s.Score > k.state.GetHighScore() {
		k.log.Debug().Int("score", s.Score).Msg("Beating the high score")
	}
}

func (k *scoreKeeper) GameOver(s game.Snapshot, cause manager.CollisionType) {
	isHigh, err := k.state.RecordGame(s.Score, s.Length, k.now())
	if err != nil {
		k.log.Warn().Err(err).Msg("Could not save scores")
	}
	k.log.Info().
		Str("session", k.state.SessionID()).
		Int("score", s.Score).
		Int("high_score", k.state.GetHighScore()).
		Bool("new_high", isHigh).
		Stringer("cause", cause).
		Msg("Game recorded")
}
