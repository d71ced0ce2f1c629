package fleeks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// EmbedService manages embeddable, shareable code environments that can
// be placed on third-party websites.
type EmbedService struct {
	client *Client
}

// CreateEmbedOptions are the options for creating an embed. Zero values
// fall back to platform defaults.
type CreateEmbedOptions struct {
	Name           string
	Description    string
	Template       models.EmbedTemplate
	DisplayMode    models.DisplayMode
	Files          map[string]string
	AllowedOrigins []string

	// SessionTimeoutMinutes is clamped to 5..60. Defaults to 30.
	SessionTimeoutMinutes int

	// MaxSessions is clamped to 1..1000. Defaults to 100.
	MaxSessions int

	// Settings overrides the default display settings.
	Settings *models.EmbedSettings
}

// Create creates a new embed.
func (s *EmbedService) Create(ctx context.Context, opts *CreateEmbedOptions) (*models.EmbedInfo, error) {
	if opts == nil || opts.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "embed name is required"}
	}

	template := opts.Template
	if template == "" {
		template = models.TemplateReact
	}
	displayMode := opts.DisplayMode
	if displayMode == "" {
		displayMode = models.DisplayWebPreview
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := opts.SessionTimeoutMinutes
	if timeout == 0 {
		timeout = 30
	}
	maxSessions := opts.MaxSessions
	if maxSessions == 0 {
		maxSessions = 100
	}
	settings := opts.Settings
	if settings == nil {
		def := models.DefaultEmbedSettings()
		settings = &def
	}

	req := map[string]any{
		"name":                    opts.Name,
		"template":                template,
		"display_mode":            displayMode,
		"allowed_origins":         origins,
		"session_timeout_minutes": clamp(timeout, 5, 60),
		"max_sessions":            clamp(maxSessions, 1, 1000),
		"settings":                settings,
	}
	if len(opts.Files) > 0 {
		// Backend expects {path: content} on create.
		req["files"] = opts.Files
	}
	if opts.Description != "" {
		req["description"] = opts.Description
	}

	var info models.EmbedInfo
	if err := s.client.do(ctx, http.MethodPost, "embeds", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListEmbedsOptions filter and paginate embed listings.
type ListEmbedsOptions struct {
	Page            int
	PageSize        int
	IncludeInactive bool
	Template        models.EmbedTemplate
	Search          string
}

// List returns embeds owned by the authenticated user.
func (s *EmbedService) List(ctx context.Context, opts *ListEmbedsOptions) ([]models.EmbedInfo, error) {
	if opts == nil {
		opts = &ListEmbedsOptions{}
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(clamp(pageSize, 1, 100)))
	params.Set("include_inactive", strconv.FormatBool(opts.IncludeInactive))
	if opts.Template != "" {
		params.Set("template", string(opts.Template))
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}

	var result struct {
		Embeds []models.EmbedInfo `json:"embeds"`
	}
	if err := s.client.get(ctx, "embeds", params, &result); err != nil {
		return nil, err
	}
	return result.Embeds, nil
}

// Get fetches an embed by ID.
func (s *EmbedService) Get(ctx context.Context, embedID string) (*models.EmbedInfo, error) {
	var info models.EmbedInfo
	path := fmt.Sprintf("embeds/%s", embedID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateEmbedOptions carry a partial embed update. Nil fields are left
// unchanged.
type UpdateEmbedOptions struct {
	Name                  *string
	Description           *string
	Files                 map[string]string
	AllowedOrigins        []string
	Settings              *models.EmbedSettings
	SessionTimeoutMinutes *int
	MaxSessions           *int
}

// Update patches embed configuration. Only provided fields are sent.
func (s *EmbedService) Update(ctx context.Context, embedID string, opts *UpdateEmbedOptions) (*models.EmbedInfo, error) {
	if opts == nil {
		return s.Get(ctx, embedID)
	}

	req := map[string]any{}
	if opts.Name != nil {
		req["name"] = *opts.Name
	}
	if opts.Description != nil {
		req["description"] = *opts.Description
	}
	if opts.Files != nil {
		// Backend expects {path: {code: content}} on update.
		files := make(map[string]models.EmbedFile, len(opts.Files))
		for p, code := range opts.Files {
			files[p] = models.EmbedFile{Code: code}
		}
		req["files"] = files
	}
	if opts.AllowedOrigins != nil {
		req["allowed_origins"] = opts.AllowedOrigins
	}
	if opts.Settings != nil {
		req["settings"] = opts.Settings
	}
	if opts.SessionTimeoutMinutes != nil {
		req["session_timeout_minutes"] = *opts.SessionTimeoutMinutes
	}
	if opts.MaxSessions != nil {
		req["max_sessions"] = *opts.MaxSessions
	}

	var info models.EmbedInfo
	path := fmt.Sprintf("embeds/%s", embedID)
	if err := s.client.do(ctx, http.MethodPatch, path, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateFile updates a single file in the embed.
func (s *EmbedService) UpdateFile(ctx context.Context, embedID, path, content string) (*models.EmbedInfo, error) {
	return s.Update(ctx, embedID, &UpdateEmbedOptions{
		Files: map[string]string{path: content},
	})
}

// Delete permanently removes an embed, terminating all sessions.
func (s *EmbedService) Delete(ctx context.Context, embedID string) error {
	path := fmt.Sprintf("embeds/%s", embedID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// Sessions lists the active sessions on an embed.
func (s *EmbedService) Sessions(ctx context.Context, embedID string) ([]models.EmbedSession, error) {
	var result struct {
		Sessions []models.EmbedSession `json:"sessions"`
	}
	path := fmt.Sprintf("embeds/%s/sessions", embedID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Sessions, nil
}

// TerminateSession terminates a specific embed session.
func (s *EmbedService) TerminateSession(ctx context.Context, embedID, sessionID string) error {
	path := fmt.Sprintf("embeds/%s/sessions/%s", embedID, sessionID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// TerminateAllSessions terminates every active session and returns the
// number terminated.
func (s *EmbedService) TerminateAllSessions(ctx context.Context, embedID string) (int, error) {
	sessions, err := s.Sessions(ctx, embedID)
	if err != nil {
		return 0, err
	}
	for _, session := range sessions {
		if err := s.TerminateSession(ctx, embedID, session.SessionID); err != nil {
			return 0, err
		}
	}
	return len(sessions), nil
}

// Analytics returns telemetry for an embed over a period ("7d", "30d",
// "90d", "1y").
func (s *EmbedService) Analytics(ctx context.Context, embedID, period string) (*models.EmbedAnalytics, error) {
	if period == "" {
		period = "30d"
	}
	params := url.Values{}
	params.Set("period", period)

	var analytics models.EmbedAnalytics
	path := fmt.Sprintf("embeds/%s/analytics", embedID)
	if err := s.client.get(ctx, path, params, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// TotalAnalytics aggregates analytics across all of the user's embeds.
func (s *EmbedService) TotalAnalytics(ctx context.Context, period string) (*models.EmbedTotalAnalytics, error) {
	if period == "" {
		period = "30d"
	}
	params := url.Values{}
	params.Set("period", period)

	var analytics models.EmbedTotalAnalytics
	if err := s.client.get(ctx, "embeds/analytics/total", params, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Pause pauses the embed. Visitors see a placeholder and existing
// sessions are terminated.
func (s *EmbedService) Pause(ctx context.Context, embedID string) (*models.EmbedStatusChange, error) {
	return s.changeStatus(ctx, embedID, "pause")
}

// Resume resumes a paused embed.
func (s *EmbedService) Resume(ctx context.Context, embedID string) (*models.EmbedStatusChange, error) {
	return s.changeStatus(ctx, embedID, "resume")
}

// Archive archives the embed for long-term storage without deletion.
func (s *EmbedService) Archive(ctx context.Context, embedID string) (*models.EmbedStatusChange, error) {
	return s.changeStatus(ctx, embedID, "archive")
}

func (s *EmbedService) changeStatus(ctx context.Context, embedID, action string) (*models.EmbedStatusChange, error) {
	var change models.EmbedStatusChange
	path := fmt.Sprintf("embeds/%s/%s", embedID, action)
	if err := s.client.do(ctx, http.MethodPost, path, nil, &change); err != nil {
		return nil, err
	}
	return &change, nil
}

// Duplicate copies an embed. When newName is empty the copy is named
// "{name} (copy)".
func (s *EmbedService) Duplicate(ctx context.Context, embedID, newName string) (*models.EmbedInfo, error) {
	if newName == "" {
		src, err := s.Get(ctx, embedID)
		if err != nil {
			return nil, err
		}
		newName = src.Name + " (copy)"
	}
	req := map[string]string{"name": newName}

	var info models.EmbedInfo
	path := fmt.Sprintf("embeds/%s/duplicate", embedID)
	if err := s.client.do(ctx, http.MethodPost, path, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateReact creates a React embed with sensible defaults.
func (s *EmbedService) CreateReact(ctx context.Context, name string, files map[string]string) (*models.EmbedInfo, error) {
	return s.Create(ctx, &CreateEmbedOptions{
		Name:     name,
		Template: models.TemplateReact,
		Files:    files,
	})
}

// CreatePython creates a Python embed with a stacked editor/terminal
// layout.
func (s *EmbedService) CreatePython(ctx context.Context, name string, files map[string]string) (*models.EmbedInfo, error) {
	settings := models.DefaultEmbedSettings()
	settings.Layout = models.LayoutStacked
	return s.Create(ctx, &CreateEmbedOptions{
		Name:        name,
		Template:    models.TemplatePython,
		DisplayMode: models.DisplaySplitView,
		Files:       files,
		Settings:    &settings,
	})
}

// CreateJupyter creates a Jupyter notebook embed.
func (s *EmbedService) CreateJupyter(ctx context.Context, name string, files map[string]string) (*models.EmbedInfo, error) {
	settings := models.DefaultEmbedSettings()
	settings.Layout = models.LayoutFullIDE
	settings.ShowTerminal = false
	return s.Create(ctx, &CreateEmbedOptions{
		Name:        name,
		Template:    models.TemplateJupyter,
		DisplayMode: models.DisplayNotebook,
		Files:       files,
		Settings:    &settings,
	})
}

// CreateStatic creates a static HTML/CSS/JS embed.
func (s *EmbedService) CreateStatic(ctx context.Context, name string, files map[string]string) (*models.EmbedInfo, error) {
	return s.Create(ctx, &CreateEmbedOptions{
		Name:     name,
		Template: models.TemplateStatic,
		Files:    files,
	})
}
