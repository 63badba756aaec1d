package ui

// Screen identifies what the browser is currently drawing
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenList
	ScreenFailed
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenList:
		return "list"
	case ScreenFailed:
		return "failed"
	case ScreenDetail:
		return "detail"
	default:
		return "unknown"
	}
}
