package gamification

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{199, 1},
		{200, 2},
		{399, 2},
		{400, 3},
		{1250, 7},
		{1350, 7},
		{4850, 25},
	}
	for _, tt := range tests {
		got := Level(tt.xp)
		if got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := Level(0)
	for xp := 1; xp <= 5000; xp++ {
		got := Level(xp)
		if got < prev {
			t.Fatalf("Level(%d) = %d < Level(%d) = %d", xp, got, xp-1, prev)
		}
		prev = got
	}
}

func TestXPProgress(t *testing.T) {
	tests := []struct {
		xp       int
		wantInto int
		wantNext int
	}{
		{0, 0, 200},
		{150, 150, 50},
		{200, 0, 200},
		{1250, 50, 150},
		{-10, 0, 200},
	}
	for _, tt := range tests {
		if got := XPIntoLevel(tt.xp); got != tt.wantInto {
			t.Errorf("XPIntoLevel(%d) = %d, want %d", tt.xp, got, tt.wantInto)
		}
		if got := XPToNextLevel(tt.xp); got != tt.wantNext {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.xp, got, tt.wantNext)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(1350)
	if s.Level != 7 || s.XPIntoLevel != 150 || s.XPToNext != 50 || s.Percent != 75 {
		t.Errorf("Summarize(1350) = %+v", s)
	}
}
