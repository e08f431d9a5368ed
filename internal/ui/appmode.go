package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeAbout
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeAbout:
		return "About"
	default:
		return "Unknown"
	}
}
