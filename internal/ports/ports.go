package ports

import (
	"context"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
)

// PlaylistParser turns the lines of an uploaded file into a Playlist. It must
// be pure: no state, no side effects.
type PlaylistParser interface {
	// Parse returns a *domain.ParseError (wrapping domain.ErrParse) on
	// malformed input.
	Parse(lines []string) (*domain.Playlist, error)
}

// ParserResolver picks the parser for an uploaded file by its name.
type ParserResolver interface {
	Get(filename string) (PlaylistParser, error)
}

// PlaylistStore is the durable mapping from playlist name to serialized
// playlist.
type PlaylistStore interface {
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// GetAll returns every stored key and value.
	GetAll(ctx context.Context) (map[string]string, error)
}

// ChannelSession holds the channels active for the current session.
type ChannelSession interface {
	// Add appends channels in order. Implementations append all or none.
	Add(ctx context.Context, channels ...domain.Channel) error

	// List returns the active channels in insertion order.
	List(ctx context.Context) ([]domain.Channel, error)
}

// Navigator receives fire-and-forget navigation requests.
type Navigator interface {
	RequestNavigation(route string)
}

// IngestionService is the driving port used by the HTTP adapter.
type IngestionService interface {
	// Dispatch applies one upload lifecycle event. It returns a non-nil
	// Activation only when the event triggered a successful activation.
	Dispatch(ctx context.Context, event domain.Event) (*domain.Activation, error)

	// DispatchAll applies events in order with no other event interleaving.
	// Every event is applied even after a failure; the first error and the
	// activation, if any, are returned.
	DispatchAll(ctx context.Context, events []domain.Event) (*domain.Activation, error)

	// Snapshot returns the queue and drag state.
	Snapshot() domain.QueueSnapshot

	// Lookup returns the tracked instance of a queued file by ID.
	Lookup(id string) (*domain.UploadFile, bool)

	// Catalog returns the previously persisted playlists keyed by name.
	Catalog(ctx context.Context) (map[string]domain.Playlist, error)

	// ActivateStored activates a playlist already present in the catalog.
	ActivateStored(ctx context.Context, name string) (*domain.Activation, error)

	// Channels returns the active session channels.
	Channels(ctx context.Context) ([]domain.Channel, error)
}
