package ui

// Screen identifies one of the five mutually exclusive dashboard screens.
// Navigation dispatches through a single switch on this value.
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenImport    Screen = "import"
	ScreenVisualize Screen = "visualize"
	ScreenTest      Screen = "test"
	ScreenPredict   Screen = "predict"
)

// Screens lists the screens in navigation order
func Screens() []Screen {
	return []Screen{ScreenHome, ScreenImport, ScreenVisualize, ScreenTest, ScreenPredict}
}

// ParseScreen maps a path segment onto a screen; unknown values fall back to
// Home so stale links never 404 the shell.
func ParseScreen(s string) Screen {
	switch Screen(s) {
	case ScreenImport, ScreenVisualize, ScreenTest, ScreenPredict:
		return Screen(s)
	}
	return ScreenHome
}

// Title returns the navigation label for a screen
func (s Screen) Title() string {
	switch s {
	case ScreenImport:
		return "Import"
	case ScreenVisualize:
		return "Visualize"
	case ScreenTest:
		return "Tests"
	case ScreenPredict:
		return "Prediction"
	}
	return "Home"
}

// Path returns the route serving a screen
func (s Screen) Path() string {
	if s == ScreenHome {
		return "/"
	}
	return "/" + string(s)
}

// Template returns the page template rendered for a screen
func (s Screen) Template() string {
	return string(s) + ".html"
}
