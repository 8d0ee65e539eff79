package hal

import "testing"

type chanKeyboard chan KeyEvent

func (k chanKeyboard) Events() <-chan KeyEvent { return k }

func TestDrainDoesNotBlock(t *testing.T) {
	k := make(chanKeyboard, 4)
	if got := Drain(k); len(got) != 0 {
		t.Fatalf("Drain(empty)=%v", got)
	}
	k <- KeyEvent{Code: KeyUp, Press: true}
	k <- KeyEvent{Press: true, Rune: '1'}
	if got := Drain(k); len(got) != 2 {
		t.Fatalf("Drain=%v want 2 events", got)
	}
	if got := Drain(k); len(got) != 0 {
		t.Fatalf("queue not emptied: %v", got)
	}
	if got := Drain(nil); got != nil {
		t.Fatalf("Drain(nil)=%v", got)
	}
}

func TestPollQuitOrEscape(t *testing.T) {
	cases := []struct {
		name string
		evs  []KeyEvent
		want bool
	}{
		{"empty", nil, false},
		{"escape press", []KeyEvent{{Code: KeyEscape, Press: true}}, true},
		{"escape release", []KeyEvent{{Code: KeyEscape}}, false},
		{"q", []KeyEvent{{Press: true, Rune: 'q'}}, true},
		{"other keys", []KeyEvent{{Press: true, Rune: 'x'}, {Code: KeyEnter, Press: true}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := make(chanKeyboard, 8)
			for _, ev := range c.evs {
				k <- ev
			}
			if got := PollQuitOrEscape(k); got != c.want {
				t.Fatalf("got %v want %v", got, c.want)
			}
		})
	}
}
