package game

// EventSystem is the outside world's turn hook. The session only
// counts moves; event content lives with the collaborator.
type EventSystem interface {
	Advance()
}

// Every eventInterval-th move advances the event system.
const eventInterval = 3

// moveTicker counts committed moves and fires the event hook on every
// third one. A nil event system is fine; the counter still runs.
type moveTicker struct {
	moves  uint64
	events EventSystem
}

// tick records one move and returns whether the event hook fired.
func (t *moveTicker) tick() bool {
	t.moves++
	if t.moves%eventInterval != 0 {
		return false
	}
	if t.events != nil {
		t.events.Advance()
	}
	return true
}
