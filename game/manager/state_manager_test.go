package manager

import "testing"

func TestHighScoreNeverDecreases(t *testing.T) {
	sm := NewStateManager()
	if sm.GetHighScore() != 0 {
		t.Fatalf("expected initial high score 0, got %d", sm.GetHighScore())
	}

	for _, score := range []int{3, 1, 7, 0, 7, 2} {
		prev := sm.GetHighScore()
		sm.RecordGameOver(GameRecord{Score: score})
		want := prev
		if score > want {
			want = score
		}
		if sm.GetHighScore() != want {
			t.Errorf("after score %d: high %d, want %d", score, sm.GetHighScore(), want)
		}
	}
	if sm.GamesPlayed() != 6 {
		t.Errorf("expected 6 games, got %d", sm.GamesPlayed())
	}
	if avg := sm.AverageScore(); avg != 20.0/6.0 {
		t.Errorf("unexpected average %v", avg)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxHistory+10; i++ {
		sm.RecordGameOver(GameRecord{Score: i})
	}
	hist := sm.GetScoreHistory()
	if len(hist) != maxHistory {
		t.Fatalf("expected %d records, got %d", maxHistory, len(hist))
	}
	if hist[0].Score != 10 {
		t.Errorf("oldest records should be dropped first, got %d", hist[0].Score)
	}
	if sm.GamesPlayed() != maxHistory+10 {
		t.Errorf("games played should count every session")
	}
}

func TestAverageCoversGamesBeyondHistory(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxHistory; i++ {
		sm.RecordGameOver(GameRecord{Score: 10})
	}
	for i := 0; i < maxHistory; i++ {
		sm.RecordGameOver(GameRecord{Score: 0})
	}
	if avg := sm.AverageScore(); avg != 5 {
		t.Errorf("expected the average over all %d games to be 5, got %v", sm.GamesPlayed(), avg)
	}
}
