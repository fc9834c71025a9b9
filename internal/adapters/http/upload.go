package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
)

// UploadResponse is returned after a multipart upload has been activated.
type UploadResponse struct {
	Activation *domain.Activation `json:"activation"`
	Rejected   []string           `json:"rejected,omitempty"`
}

// EventRequest is a single upload lifecycle event sent by a client-side widget.
type EventRequest struct {
	Type string     `json:"type" binding:"required"`
	File *EventFile `json:"file,omitempty"`
}

// EventFile describes the file attached to an event. Content carries the file
// text for addedToQueue.
type EventFile struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Size     int64   `json:"size"`
	Progress int     `json:"progress"`
	Status   string  `json:"status"`
	Content  *string `json:"content,omitempty"`
}

// EventResponse reports the queue after an event and any activation it caused.
type EventResponse struct {
	Activation *domain.Activation   `json:"activation,omitempty"`
	Queue      domain.QueueSnapshot `json:"queue"`
}

// UploadPlaylist accepts one or more files and drives them through the upload
// lifecycle: addedToQueue (or rejected), uploading, allAddedToQueue, removed.
//
//	@Summary		Upload playlist
//	@Description	Uploads an M3U playlist, saves it under its file name and activates it for the session.
//	@Description	Only the first accepted file is activated.
//	@Tags			uploads
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Playlist file (.m3u, .m3u8)"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/uploads [post]
func (h *Handler) UploadPlaylist(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid multipart form: " + err.Error(),
		})
		return
	}

	headers := form.File["file"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "form field 'file' is required",
		})
		return
	}

	var events []domain.Event
	var queued []*domain.UploadFile
	var rejected []string

	for _, fh := range headers {
		file := &domain.UploadFile{
			ID:         uuid.NewString(),
			Name:       fh.Filename,
			Size:       fh.Size,
			Status:     "queue",
			NativeFile: multipartSource{header: fh},
		}
		if !h.formats.Accepts(fh.Filename) {
			events = append(events, domain.Event{Type: domain.EventRejected, File: file})
			rejected = append(rejected, fh.Filename)
			continue
		}
		events = append(events, domain.Event{Type: domain.EventAddedToQueue, File: file})
		queued = append(queued, file)
	}

	// The body has been received in full by now.
	for i, file := range queued {
		done := *file
		done.Progress = 100
		done.Status = "done"
		events = append(events, domain.Event{Type: domain.EventUploading, File: &done})
		queued[i] = &done
	}

	events = append(events, domain.Event{Type: domain.EventAllAddedToQueue})
	for _, file := range queued {
		events = append(events, domain.Event{Type: domain.EventRemoved, File: file})
	}

	// One call, so no other upload can slip a file in front of ours.
	activation, actErr := h.service.DispatchAll(c.Request.Context(), events)
	if actErr != nil {
		writeError(c, actErr)
		return
	}
	if activation == nil {
		c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
			Error:   "unsupported_format",
			Message: "no playlist file was accepted",
		})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Activation: activation, Rejected: rejected})
}

// DispatchEvent applies one raw lifecycle event to the upload queue.
//
//	@Summary		Dispatch upload event
//	@Description	Types: addedToQueue, allAddedToQueue, uploading, cancelled, removed, dragOver, dragOut, drop, rejected.
//	@Description	Unknown types are ignored.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EventRequest	true	"Lifecycle event"
//	@Success		200		{object}	EventResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/uploads/events [post]
func (h *Handler) DispatchEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	event := domain.Event{Type: domain.ParseEventType(req.Type)}
	if req.File != nil {
		event.File = h.resolveFile(event.Type, req.File)
	}

	activation, err := h.service.Dispatch(c.Request.Context(), event)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, EventResponse{
		Activation: activation,
		Queue:      h.service.Snapshot(),
	})
}

// resolveFile builds the UploadFile for an incoming event. Removal events
// refer to the tracked instance so that identity comparison matches.
func (h *Handler) resolveFile(t domain.EventType, in *EventFile) *domain.UploadFile {
	tracked, ok := h.service.Lookup(in.ID)

	switch t {
	case domain.EventCancelled, domain.EventRemoved:
		if ok {
			return tracked
		}
	case domain.EventAddedToQueue:
		if in.ID == "" {
			in.ID = uuid.NewString()
		}
	}

	file := &domain.UploadFile{
		ID:       in.ID,
		Name:     in.Name,
		Size:     in.Size,
		Progress: in.Progress,
		Status:   in.Status,
	}
	switch {
	case in.Content != nil:
		file.NativeFile = contentSource(*in.Content)
	case ok:
		file.NativeFile = tracked.NativeFile
		if file.Name == "" {
			file.Name = tracked.Name
		}
	}
	return file
}

type multipartSource struct {
	header *multipart.FileHeader
}

func (m multipartSource) Open() (io.ReadCloser, error) {
	return m.header.Open()
}

type contentSource string

func (s contentSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader([]byte(s))), nil
}
