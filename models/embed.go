package models

import "fmt"

// EmbedTemplate selects the pre-configured language stack and starter
// files for an embed.
type EmbedTemplate string

const (
	// Web frameworks
	TemplateReact   EmbedTemplate = "react"
	TemplateVue     EmbedTemplate = "vue"
	TemplateAngular EmbedTemplate = "angular"
	TemplateSvelte  EmbedTemplate = "svelte"
	TemplateNextJS  EmbedTemplate = "nextjs"
	TemplateNuxt    EmbedTemplate = "nuxt"
	TemplateAstro   EmbedTemplate = "astro"
	TemplateSolid   EmbedTemplate = "solid"
	TemplateQwik    EmbedTemplate = "qwik"

	// Backend languages
	TemplatePython     EmbedTemplate = "python"
	TemplateNode       EmbedTemplate = "node"
	TemplateTypeScript EmbedTemplate = "typescript"
	TemplateGo         EmbedTemplate = "go"
	TemplateRust       EmbedTemplate = "rust"
	TemplateJava       EmbedTemplate = "java"
	TemplateKotlin     EmbedTemplate = "kotlin"
	TemplateCSharp     EmbedTemplate = "csharp"
	TemplatePHP        EmbedTemplate = "php"
	TemplateRuby       EmbedTemplate = "ruby"

	// Mobile (streamed display)
	TemplateFlutter     EmbedTemplate = "flutter"
	TemplateReactNative EmbedTemplate = "react_native"
	TemplateSwift       EmbedTemplate = "swift"
	TemplateAndroid     EmbedTemplate = "android"

	// Specialized
	TemplateJupyter EmbedTemplate = "jupyter"
	TemplateUnity   EmbedTemplate = "unity"
	TemplateGodot   EmbedTemplate = "godot"

	// Minimal
	TemplateStatic    EmbedTemplate = "static"
	TemplateVanillaJS EmbedTemplate = "vanilla_js"
	TemplateDefault   EmbedTemplate = "default"
)

// DisplayMode determines how the embed preview panel is rendered.
type DisplayMode string

const (
	// DisplayWebPreview is a standard iframe preview for web apps (default).
	DisplayWebPreview DisplayMode = "web_preview"
	// DisplayVNCStream streams a desktop app over VNC.
	DisplayVNCStream DisplayMode = "vnc_stream"
	// DisplayGuacamoleStream streams mobile emulators via Apache Guacamole.
	DisplayGuacamoleStream DisplayMode = "guacamole_stream"
	// DisplayTerminalOnly shows terminal output with no preview panel.
	DisplayTerminalOnly DisplayMode = "terminal_only"
	// DisplayNotebook renders a Jupyter notebook interface.
	DisplayNotebook DisplayMode = "notebook"
	// DisplaySplitView splits between editor and terminal output.
	DisplaySplitView DisplayMode = "split_view"
)

// EmbedLayoutPreset arranges the embed UI panels.
type EmbedLayoutPreset string

const (
	LayoutEditorOnly    EmbedLayoutPreset = "editor-only"
	LayoutPreviewOnly   EmbedLayoutPreset = "preview-only"
	LayoutSideBySide    EmbedLayoutPreset = "side-by-side"
	LayoutStacked       EmbedLayoutPreset = "stacked"
	LayoutFullIDE       EmbedLayoutPreset = "full-ide"
	LayoutMobilePreview EmbedLayoutPreset = "mobile-preview"
	LayoutTabletPreview EmbedLayoutPreset = "tablet-preview"
)

// EmbedTheme is a color theme for embeds.
type EmbedTheme string

const (
	ThemeDark           EmbedTheme = "dark"
	ThemeLight          EmbedTheme = "light"
	ThemeAuto           EmbedTheme = "auto"
	ThemeGitHubDark     EmbedTheme = "github-dark"
	ThemeGitHubLight    EmbedTheme = "github-light"
	ThemeMonokai        EmbedTheme = "monokai"
	ThemeDracula        EmbedTheme = "dracula"
	ThemeNord           EmbedTheme = "nord"
	ThemeSolarizedDark  EmbedTheme = "solarized-dark"
	ThemeSolarizedLight EmbedTheme = "solarized-light"
)

// EmbedStatus is an embed's lifecycle status.
type EmbedStatus string

const (
	EmbedActive   EmbedStatus = "active"
	EmbedPaused   EmbedStatus = "paused"
	EmbedArchived EmbedStatus = "archived"
)

// EmbedSettings controls embed display and behavior.
type EmbedSettings struct {
	Layout         EmbedLayoutPreset `json:"layout"`
	Theme          EmbedTheme        `json:"theme"`
	ReadOnly       bool              `json:"read_only"`
	ShowTerminal   bool              `json:"show_terminal"`
	ShowFileTree   bool              `json:"show_file_tree"`
	ShowConsole    bool              `json:"show_console"`
	AutoRun        bool              `json:"auto_run"`
	HideNavigation bool              `json:"hide_navigation"`
	FontSize       int               `json:"font_size"`
	TabSize        int               `json:"tab_size"`
}

// DefaultEmbedSettings returns the platform defaults: side-by-side
// layout, dark theme, all panels visible, auto-run on load.
func DefaultEmbedSettings() EmbedSettings {
	return EmbedSettings{
		Layout:       LayoutSideBySide,
		Theme:        ThemeDark,
		ShowTerminal: true,
		ShowFileTree: true,
		ShowConsole:  true,
		AutoRun:      true,
		FontSize:     14,
		TabSize:      2,
	}
}

// EmbedFile is a file in an embed's initial file set.
type EmbedFile struct {
	Code   string `json:"code"`
	Hidden bool   `json:"hidden,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// EmbedInfo is the full description of an embed.
type EmbedInfo struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	Description           string               `json:"description,omitempty"`
	Template              EmbedTemplate        `json:"template"`
	DisplayMode           DisplayMode          `json:"display_mode"`
	ProjectCategory       string               `json:"project_category,omitempty"`
	EmbedURL              string               `json:"embed_url,omitempty"`
	IframeHTML            string               `json:"iframe_html,omitempty"`
	Files                 map[string]EmbedFile `json:"files,omitempty"`
	AllowedOrigins        []string             `json:"allowed_origins,omitempty"`
	MaxSessions           int                  `json:"max_sessions"`
	SessionTimeoutMinutes int                  `json:"session_timeout_minutes"`
	Settings              *EmbedSettings       `json:"settings,omitempty"`
	IsActive              bool                 `json:"is_active"`
	IsPublic              bool                 `json:"is_public"`
	RequiresStreaming     bool                 `json:"requires_streaming"`
	OwnerTier             string               `json:"owner_tier,omitempty"`
	MinRequiredTier       string               `json:"min_required_tier,omitempty"`
	IsTierSufficient      bool                 `json:"is_tier_sufficient"`
	TotalViews            int                  `json:"total_views,omitempty"`
	ActiveSessions        int                  `json:"active_sessions,omitempty"`
	CreatedAt             string               `json:"created_at,omitempty"`
	UpdatedAt             string               `json:"updated_at,omitempty"`
}

// PublicURL returns the public embed URL, deriving it from the embed ID
// when the API response did not include one.
func (e *EmbedInfo) PublicURL() string {
	if e.EmbedURL != "" {
		return e.EmbedURL
	}
	return fmt.Sprintf("https://embed.fleeks.ai/%s", e.ID)
}

// Iframe returns ready-to-use iframe HTML for the embed.
func (e *EmbedInfo) Iframe() string {
	if e.IframeHTML != "" {
		return e.IframeHTML
	}
	return fmt.Sprintf(`<iframe src="%s" width="100%%" height="500px" frameborder="0" allow="clipboard-read; clipboard-write" sandbox="allow-scripts allow-same-origin allow-forms allow-popups"></iframe>`, e.PublicURL())
}

// MarkdownEmbed returns the MDX component form for documentation sites.
func (e *EmbedInfo) MarkdownEmbed() string {
	return fmt.Sprintf(`<FleeksEmbed id="%s" />`, e.ID)
}

// EmbedSession is an active visitor session on an embed.
type EmbedSession struct {
	SessionID      string         `json:"session_id"`
	DisplayMode    DisplayMode    `json:"display_mode"`
	Status         string         `json:"status"`
	OriginURL      string         `json:"origin_url,omitempty"`
	StartedAt      string         `json:"started_at"`
	LastActivityAt string         `json:"last_activity_at,omitempty"`
	IsStreaming    bool           `json:"is_streaming"`
	Metrics        map[string]int `json:"metrics,omitempty"`
}

// EmbedAnalytics is telemetry for a single embed over a period.
type EmbedAnalytics struct {
	EmbedID                       string           `json:"embed_id"`
	Period                        string           `json:"period"`
	TotalViews                    int              `json:"total_views"`
	UniqueVisitors                int              `json:"unique_visitors"`
	TotalSessions                 int              `json:"total_sessions"`
	AverageSessionDurationSeconds float64          `json:"average_session_duration_seconds"`
	TopOrigins                    []map[string]any `json:"top_origins,omitempty"`
	ViewsByDay                    []map[string]any `json:"views_by_day,omitempty"`
	SessionsByDay                 []map[string]any `json:"sessions_by_day,omitempty"`
}

// EmbedTotalAnalytics aggregates analytics across all of a user's embeds.
type EmbedTotalAnalytics struct {
	Period        string `json:"period"`
	EmbedCount    int    `json:"embed_count"`
	TotalViews    int    `json:"total_views"`
	TotalSessions int    `json:"total_sessions"`
}

// EmbedStatusChange confirms a pause, resume, or archive operation.
type EmbedStatusChange struct {
	ID             string      `json:"id"`
	Status         EmbedStatus `json:"status"`
	PreviousStatus EmbedStatus `json:"previous_status"`
	Message        string      `json:"message,omitempty"`
}
