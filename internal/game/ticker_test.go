package game

import "testing"

type countingEvents struct {
	advances int
}

func (c *countingEvents) Advance() { c.advances++ }

func TestTickerFiresEveryThirdMove(t *testing.T) {
	ev := &countingEvents{}
	tk := moveTicker{events: ev}

	if tk.tick() || tk.tick() {
		t.Error("ticker fired before the third move")
	}
	if ev.advances != 0 {
		t.Errorf("advances = %d after two moves, want 0", ev.advances)
	}

	if !tk.tick() {
		t.Error("ticker silent on the third move")
	}
	if ev.advances != 1 {
		t.Errorf("advances = %d after three moves, want 1", ev.advances)
	}

	for i := 0; i < 3; i++ {
		tk.tick()
	}
	if ev.advances != 2 {
		t.Errorf("advances = %d after six moves, want 2", ev.advances)
	}
}

func TestTickerNilEventSystem(t *testing.T) {
	tk := moveTicker{}
	for i := 0; i < 9; i++ {
		tk.tick()
	}
	if tk.moves != 9 {
		t.Errorf("moves = %d, want 9", tk.moves)
	}
}
