package config

// Config represents the complete configuration for webpane.
type Config struct {
	WebPane  WebPaneConfig  `mapstructure:"webpane" toml:"webpane" json:"webpane"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Keybindings maps key strings ("ctrl+shift+i") to pane command names.
	Keybindings map[string]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
}

// WebPaneConfig holds the defaults new panes are opened with.
type WebPaneConfig struct {
	// Homepage is loaded when no file mapping applies.
	Homepage string `mapstructure:"homepage" toml:"homepage" json:"homepage" jsonschema:"default=about:blank" jsonschema_description:"Address a new pane loads if no URL mapping applies or mapping is disabled"`
	// URLTemplate maps a file to the URL a new pane loads. Empty disables mapping.
	URLTemplate string `mapstructure:"url_template" toml:"url_template" json:"url_template" jsonschema_description:"URL a new pane loads when opened from a file. Placeholders: {full_path} {name_with_ext} {name_no_ext}. Leave blank to disable mapping"`
	// AutoReloadWait is the delay between a save and the reload, in milliseconds.
	AutoReloadWait int `mapstructure:"auto_reload_wait" toml:"auto_reload_wait" json:"auto_reload_wait" jsonschema:"minimum=0,maximum=2000,default=0" jsonschema_description:"Milliseconds to wait between a save and the auto reload"`
	// HideToolbar opens new panes with the toolbar hidden.
	HideToolbar bool `mapstructure:"hide_toolbar" toml:"hide_toolbar" json:"hide_toolbar" jsonschema:"default=false" jsonschema_description:"Open new panes with the address bar and toolbar hidden"`
	// ShowDevTools opens new panes with the inspector shown.
	ShowDevTools bool `mapstructure:"show_dev_tools" toml:"show_dev_tools" json:"show_dev_tools" jsonschema:"default=false" jsonschema_description:"Open new panes with developer tools shown"`
	// AutoReload opens new panes with auto reload on.
	AutoReload bool `mapstructure:"auto_reload" toml:"auto_reload" json:"auto_reload" jsonschema:"default=false" jsonschema_description:"Open new panes with auto reload on"`
	// ReloadCompanions are glob patterns of sibling files whose writes also
	// trigger an auto reload, such as "*.css".
	ReloadCompanions []string `mapstructure:"reload_companions" toml:"reload_companions" json:"reload_companions" jsonschema_description:"Glob patterns of files next to the source file that also trigger auto reload when saved"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`

	// EnableFileLog writes one session_<id>.log per run under LogDir.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log" jsonschema:"default=false"`
	// LogDir defaults to $XDG_STATE_HOME/webpane/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0,default=7"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress" jsonschema:"default=true"`
	// CaptureOutput routes the engine's stdout/stderr through the logger.
	CaptureOutput bool `mapstructure:"capture_output" toml:"capture_output" json:"capture_output" jsonschema:"default=false"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path of the SQLite file storing saved panes. Defaults to $XDG_DATA_HOME/webpane/webpane.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}
