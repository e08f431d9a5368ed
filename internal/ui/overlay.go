package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a view drawn in place of the dashboard body, such as the
// about box. Mode selects which keybinds apply while it is on top.
type Overlay struct {
	View    View
	Dismiss string // key that closes it, in tea.KeyMsg.String() form
	Mode    AppMode
}

// IsDismissKey reports whether key closes the overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open overlays; only the last one is drawn and
// receives keys.
type OverlayStack struct {
	Stack []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	n := len(s.Stack)
	if n == 0 {
		return Overlay{}, false
	}
	return s.Stack[n-1], true
}

func (s *OverlayStack) Len() int { return len(s.Stack) }

// Mode is the mode of the top overlay, or fallback when none is open.
func (s *OverlayStack) Mode(fallback AppMode) AppMode {
	if top, ok := s.Peek(); ok {
		return top.Mode
	}
	return fallback
}

// UpdateTop forwards msg to the top overlay. ok is false when the stack
// is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	n := len(s.Stack)
	if n == 0 {
		return nil, false
	}
	s.Stack[n-1].View, cmd = s.Stack[n-1].View.Update(msg)
	return cmd, true
}
