package domain

import (
	"io"
)

// FileSource is the raw, byte-bearing handle behind an uploaded file.
type FileSource interface {
	Open() (io.ReadCloser, error)
}

// UploadFile is a file tracked by the upload queue. Identity is by ID; the
// upload widget guarantees uniqueness.
type UploadFile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Size       int64      `json:"size"`
	Progress   int        `json:"progress"`
	Status     string     `json:"status,omitempty"`
	NativeFile FileSource `json:"-"`
}

// Segment is a single entry of a parsed playlist.
type Segment struct {
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	Duration   float64           `json:"duration"`
	TvgID      string            `json:"tvg_id,omitempty"`
	TvgName    string            `json:"tvg_name,omitempty"`
	TvgLogo    string            `json:"tvg_logo,omitempty"`
	Group      string            `json:"group,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

// Playlist is an ordered collection of segments. Order is playback order.
type Playlist struct {
	Header   map[string]string `json:"header,omitempty"`
	Segments []Segment         `json:"segments"`
}

// Channel is a session entry built from a Segment.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Group      string `json:"group,omitempty"`
	Logo       string `json:"logo,omitempty"`
	EpgID      string `json:"epg_id,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
	Referrer   string `json:"referrer,omitempty"`
	SourceList string `json:"source_playlist"`
}

// ActivationSource describes how an activation was triggered.
type ActivationSource string

const (
	ActivationSourceUpload ActivationSource = "upload"
	ActivationSourceStored ActivationSource = "stored"
)

// Activation summarizes a completed playlist activation.
type Activation struct {
	Key                string           `json:"key"`
	Source             ActivationSource `json:"source"`
	SegmentCount       int              `json:"segment_count"`
	ChannelsAdded      int              `json:"channels_added"`
	NavigationRequests int              `json:"navigation_requests"`
	NavigateTo         string           `json:"navigate_to,omitempty"`
	IgnoredFiles       []string         `json:"ignored_files,omitempty"`
}

// QueueSnapshot is a point-in-time copy of the upload controller state.
type QueueSnapshot struct {
	Files      []UploadFile `json:"files"`
	DragActive bool         `json:"drag_active"`
}

// NavigationState describes the navigation requests emitted so far.
type NavigationState struct {
	LastRoute string `json:"last_route,omitempty"`
	Requests  int    `json:"requests"`
}
