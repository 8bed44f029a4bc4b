package manager_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"
)

var grid = types.DefaultSettings().Grid

func TestGenerateFoodStaysOnGrid(t *testing.T) {
	fm := manager.NewFoodManager(grid, 42)
	for i := 0; i < 1000; i++ {
		p := fm.GenerateFood()
		if p.X < 0 || p.X >= grid.Width || p.Y < 0 || p.Y >= grid.Height {
			t.Fatalf("food %v outside the grid", p)
		}
		if p.X%grid.UnitSize != 0 || p.Y%grid.UnitSize != 0 {
			t.Fatalf("food %v not aligned to unit %d", p, grid.UnitSize)
		}
		if fm.GetFood() != p {
			t.Fatalf("GetFood() = %v, want %v", fm.GetFood(), p)
		}
	}
}

func TestGenerateFoodIsSeeded(t *testing.T) {
	a := manager.NewFoodManager(grid, 7)
	b := manager.NewFoodManager(grid, 7)
	for i := 0; i < 20; i++ {
		if pa, pb := a.GenerateFood(), b.GenerateFood(); pa != pb {
			t.Fatalf("step %d: same seed produced %v and %v", i, pa, pb)
		}
	}
}

func TestCheckCollision(t *testing.T) {
	cm := manager.NewCollisionManager(grid)

	tests := []struct {
		name string
		head types.Point
		want manager.CollisionType
	}{
		{"inside", types.Point{X: 240, Y: 240}, manager.NoCollision},
		{"origin", types.Point{X: 0, Y: 0}, manager.NoCollision},
		{"exact right edge", types.Point{X: 500, Y: 100}, manager.NoCollision},
		{"exact bottom edge", types.Point{X: 100, Y: 500}, manager.NoCollision},
		{"past right edge", types.Point{X: 520, Y: 100}, manager.WallCollision},
		{"past bottom edge", types.Point{X: 100, Y: 520}, manager.WallCollision},
		{"past left edge", types.Point{X: -20, Y: 100}, manager.WallCollision},
		{"past top edge", types.Point{X: 100, Y: -20}, manager.WallCollision},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := entity.NewSnake(types.Point{X: 260, Y: 260}, 3, grid.Capacity())
			s.Body[0] = tc.head
			if got := cm.CheckCollision(s); got != tc.want {
				t.Errorf("CheckCollision() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelfCollisionIgnoresVacatedSlot(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := entity.NewSnake(types.Point{}, 4, grid.Capacity())
	copy(s.Body, []types.Point{
		{X: 40, Y: 40}, {X: 40, Y: 60}, {X: 60, Y: 60}, {X: 60, Y: 40}, {X: 40, Y: 40},
	})
	if got := cm.CheckCollision(s); got != manager.NoCollision {
		t.Fatalf("head on vacated tail slot: got %v, want none", got)
	}

	s.Body[3] = types.Point{X: 40, Y: 40}
	if got := cm.CheckCollision(s); got != manager.SelfCollision {
		t.Fatalf("head on body: got %v, want self", got)
	}
}

func TestStateManagerRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data", "scores.json")

	sm := manager.NewStateManager(filename)
	if err := sm.LoadStats(); err != nil {
		t.Fatalf("missing file should load as empty: %v", err)
	}

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if high, err := sm.RecordGame(7, 12, end); err != nil || !high {
		t.Fatalf("RecordGame(7) = %v, %v; want new high", high, err)
	}
	if high, err := sm.RecordGame(3, 8, end); err != nil || high {
		t.Fatalf("RecordGame(3) = %v, %v; want not high", high, err)
	}

	reloaded := manager.NewStateManager(filename)
	if err := reloaded.LoadStats(); err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if reloaded.GetHighScore() != 7 {
		t.Errorf("high score = %d, want 7", reloaded.GetHighScore())
	}
	history := reloaded.GetScoreHistory()
	if len(history) != 2 {
		t.Fatalf("history has %d records, want 2", len(history))
	}
	if history[0].SessionID != sm.SessionID() || history[1].Score != 3 {
		t.Errorf("unexpected history %+v", history)
	}
}

func TestStateManagerRejectsCorruptFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(filename, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := manager.NewStateManager(filename).LoadStats(); err == nil {
		t.Fatal("expected an error for a corrupt score file")
	}
}

func TestStateManagerInMemory(t *testing.T) {
	sm := manager.NewStateManager("")
	if _, err := sm.RecordGame(4, 9, time.Now()); err != nil {
		t.Fatalf("in-memory record: %v", err)
	}
	if sm.GetHighScore() != 4 {
		t.Fatalf("high score = %d, want 4", sm.GetHighScore())
	}
}
