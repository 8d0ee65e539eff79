package hal

// Drain returns every event currently queued on k without blocking.
func Drain(k Keyboard) []KeyEvent {
	if k == nil {
		return nil
	}
	ch := k.Events()
	if ch == nil {
		return nil
	}
	var out []KeyEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

// IsEscape reports whether ev is an Escape key press.
func IsEscape(ev KeyEvent) bool {
	return ev.Press && ev.Code == KeyEscape
}

// IsQuit reports whether ev asks to leave: Escape or the 'q' key.
func IsQuit(ev KeyEvent) bool {
	return IsEscape(ev) || (ev.Press && (ev.Rune == 'q' || ev.Rune == 'Q'))
}

// PollQuitOrEscape drains k and reports whether a quit or escape request
// was among the queued events.
func PollQuitOrEscape(k Keyboard) bool {
	quit := false
	for _, ev := range Drain(k) {
		if IsQuit(ev) {
			quit = true
		}
	}
	return quit
}
