package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "" // browser/web
	IconFile     = "" // file
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconLogs     = "" // file-text
	IconPane     = "" // columns
	IconCheck    = ""
	IconX        = ""
	IconTrash    = ""
	IconCursor   = "" // chevron-right
	IconReload   = "" // refresh
)
