package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpp0ca/PlaylistUploader-API/internal/adapters"
	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"
)

// NavigationReporter exposes the navigation requests emitted by activations.
type NavigationReporter interface {
	State() domain.NavigationState
}

// Handler holds the HTTP handlers for the playlist uploader API.
type Handler struct {
	service        ports.IngestionService
	formats        *adapters.FormatRegistry
	navigation     NavigationReporter
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler. formats decides which uploaded files
// are queued and which are rejected.
func NewHandler(service ports.IngestionService, formats *adapters.FormatRegistry, navigation NavigationReporter, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		formats:        formats,
		navigation:     navigation,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/uploads", h.GetQueue)
		api.POST("/uploads", h.UploadPlaylist)
		api.POST("/uploads/events", h.DispatchEvent)
		api.GET("/playlists", h.ListPlaylists)
		api.POST("/playlists/:name/activate", h.ActivatePlaylist)
		api.GET("/channels", h.ListChannels)
		api.GET("/navigation", h.GetNavigation)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GetQueue returns the tracked upload queue and drag state.
//
//	@Summary		Upload queue
//	@Tags			uploads
//	@Produce		json
//	@Success		200	{object}	domain.QueueSnapshot
//	@Router			/api/v1/uploads [get]
func (h *Handler) GetQueue(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot())
}

// ListPlaylists returns the catalog of previously saved playlists.
//
//	@Summary		List saved playlists
//	@Description	Returns every stored playlist whose name contains ".m3u", keyed by name.
//	@Tags			playlists
//	@Produce		json
//	@Success		200	{object}	map[string]domain.Playlist
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/v1/playlists [get]
func (h *Handler) ListPlaylists(c *gin.Context) {
	catalog, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// ActivatePlaylist activates a saved playlist for the current session.
//
//	@Summary		Activate saved playlist
//	@Tags			playlists
//	@Produce		json
//	@Param			name	path		string	true	"Playlist name, e.g. channels.m3u"
//	@Success		200		{object}	domain.Activation
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/playlists/{name}/activate [post]
func (h *Handler) ActivatePlaylist(c *gin.Context) {
	activation, err := h.service.ActivateStored(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activation)
}

// ListChannels returns the channels of the active session.
//
//	@Summary		Active channels
//	@Tags			session
//	@Produce		json
//	@Success		200	{array}		domain.Channel
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/v1/channels [get]
func (h *Handler) ListChannels(c *gin.Context) {
	channels, err := h.service.Channels(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// GetNavigation returns the navigation requests emitted so far.
//
//	@Summary		Navigation state
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	domain.NavigationState
//	@Router			/api/v1/navigation [get]
func (h *Handler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, h.navigation.State())
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// writeError maps the domain error kinds to HTTP status codes.
func writeError(c *gin.Context, err error) {
	resp := ErrorResponse{Message: err.Error()}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrDecode):
		status, resp.Error = http.StatusUnprocessableEntity, "unreadable_file"
	case errors.Is(err, domain.ErrParse):
		status, resp.Error = http.StatusUnprocessableEntity, "invalid_playlist"
		var perr *domain.ParseError
		if errors.As(err, &perr) {
			resp.Line = perr.Line
		}
	case errors.Is(err, domain.ErrUnsupported):
		status, resp.Error = http.StatusUnsupportedMediaType, "unsupported_format"
	case errors.Is(err, domain.ErrQueueBusy):
		status, resp.Error = http.StatusConflict, "queue_busy"
	case errors.Is(err, domain.ErrPlaylistNotFound):
		status, resp.Error = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrPersistence):
		resp.Error = "persistence_failed"
	case errors.Is(err, domain.ErrSession):
		resp.Error = "session_failed"
	default:
		resp.Error = "internal_error"
	}

	c.JSON(status, resp)
}
