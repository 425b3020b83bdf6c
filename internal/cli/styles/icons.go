package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconCode     = "\uf121" // code
	IconClock    = "\uf017" // clock
	IconTrash    = "\uf1f8" // trash

	// UI
	IconCursor = "\uf054" // chevron-right
)
