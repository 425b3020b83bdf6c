package entity

// PopupState is the state of the popup controller.
type PopupState int

const (
	PopupIdle PopupState = iota
	PopupParsing
	PopupFormatted
	PopupParseError
)

func (s PopupState) String() string {
	switch s {
	case PopupIdle:
		return "idle"
	case PopupParsing:
		return "parsing"
	case PopupFormatted:
		return "formatted"
	case PopupParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}
