package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/logging"
	"github.com/jpp0ca/PlaylistUploader-API/internal/m3u"
	"github.com/jpp0ca/PlaylistUploader-API/internal/metrics"
	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"
)

// DefaultNavigationRoute is where the player lives.
const DefaultNavigationRoute = "/iptv"

// Options tune the activation behaviour.
type Options struct {
	// NavigationRoute is the target of navigation requests.
	NavigationRoute string

	// NavigateOnce emits a single navigation request per activation instead
	// of one per hydrated channel.
	NavigateOnce bool

	// StrictSingleUpload fails the trigger with domain.ErrQueueBusy when more
	// than one file is queued. Otherwise only the first file is read.
	StrictSingleUpload bool
}

// Service implements ports.IngestionService. It tracks the upload queue,
// reacts to lifecycle events one at a time and runs the activation pipeline
// when the widget reports that all files have been queued.
type Service struct {
	parsers   ports.ParserResolver
	store     ports.PlaylistStore
	session   ports.ChannelSession
	navigator ports.Navigator
	opts      Options
	newID     func() string

	// mu serialises Dispatch. It guards queue and dragActive.
	mu         sync.Mutex
	queue      []*domain.UploadFile
	dragActive bool

	// activateMu serialises persist-then-hydrate.
	activateMu sync.Mutex
}

// NewService creates a new ingestion service.
func NewService(
	parsers ports.ParserResolver,
	store ports.PlaylistStore,
	session ports.ChannelSession,
	navigator ports.Navigator,
	opts Options,
) *Service {
	if opts.NavigationRoute == "" {
		opts.NavigationRoute = DefaultNavigationRoute
	}
	return &Service{
		parsers:   parsers,
		store:     store,
		session:   session,
		navigator: navigator,
		opts:      opts,
		newID:     uuid.NewString,
	}
}

// Dispatch applies a single lifecycle event to the queue. Unknown event types
// are ignored.
func (s *Service) Dispatch(ctx context.Context, event domain.Event) (*domain.Activation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatch(ctx, event)
}

// DispatchAll applies a whole widget sequence (add, trigger, remove) under a
// single lock so that concurrent uploads never see each other's files.
func (s *Service) DispatchAll(ctx context.Context, events []domain.Event) (*domain.Activation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var activation *domain.Activation
	var firstErr error
	for _, event := range events {
		a, err := s.dispatch(ctx, event)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if a != nil {
			activation = a
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return activation, nil
}

// dispatch requires s.mu.
func (s *Service) dispatch(ctx context.Context, event domain.Event) (*domain.Activation, error) {
	metrics.UploadEventsTotal.WithLabelValues(event.Type.String()).Inc()
	defer func() {
		metrics.QueueLength.Set(float64(len(s.queue)))
	}()

	switch event.Type {
	case domain.EventAllAddedToQueue:
		return s.onAllAddedToQueue(ctx)

	case domain.EventAddedToQueue:
		if event.File != nil {
			s.queue = append(s.queue, event.File)
			logging.Debug("[upload] queued %s (%s)", event.File.Name, event.File.ID)
		}

	case domain.EventUploading:
		if event.File != nil {
			if i := s.indexOf(event.File.ID); i >= 0 {
				s.queue[i] = event.File
			}
		}

	case domain.EventCancelled, domain.EventRemoved:
		s.remove(event.File)

	case domain.EventDragOver:
		s.dragActive = true

	case domain.EventDragOut, domain.EventDrop:
		s.dragActive = false

	case domain.EventRejected:
		if event.File != nil {
			logging.Warn("[upload] %s rejected", event.File.Name)
		}

	case domain.EventUnknown:
	}

	return nil, nil
}

// Snapshot returns a copy of the queue and the drag state.
func (s *Service) Snapshot() domain.QueueSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]domain.UploadFile, 0, len(s.queue))
	for _, f := range s.queue {
		files = append(files, *f)
	}
	return domain.QueueSnapshot{Files: files, DragActive: s.dragActive}
}

// Lookup returns the tracked instance of a queued file.
func (s *Service) Lookup(id string) (*domain.UploadFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.queue[i], true
	}
	return nil, false
}

// Channels returns the channels of the active session.
func (s *Service) Channels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := s.session.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSession, err)
	}
	return channels, nil
}

func (s *Service) onAllAddedToQueue(ctx context.Context) (*domain.Activation, error) {
	if len(s.queue) == 0 {
		logging.Debug("[upload] allAddedToQueue with empty queue, nothing to do")
		return nil, nil
	}
	if s.opts.StrictSingleUpload && len(s.queue) > 1 {
		return nil, fmt.Errorf("%w: %d files", domain.ErrQueueBusy, len(s.queue))
	}

	// Only the first queued file is activated.
	target := *s.queue[0]
	var ignored []string
	for _, f := range s.queue[1:] {
		ignored = append(ignored, f.Name)
	}
	if len(ignored) > 0 {
		logging.Warn("[upload] activating %s, ignoring %d other queued file(s)", target.Name, len(ignored))
	}

	parser, err := s.parsers.Get(target.Name)
	if err != nil {
		metrics.ActivationsTotal.WithLabelValues(string(domain.ActivationSourceUpload), "unsupported").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupported, err)
	}

	lines, err := readLines(ctx, target)
	if err != nil {
		metrics.ActivationsTotal.WithLabelValues(string(domain.ActivationSourceUpload), "decode_error").Inc()
		logging.Error("[upload] failed to read %s: %v", target.Name, err)
		return nil, err
	}

	activation, err := s.activateUpload(ctx, parser, target.Name, lines)
	if err != nil {
		return nil, err
	}
	activation.IgnoredFiles = ignored
	return activation, nil
}

func (s *Service) indexOf(id string) int {
	for i, f := range s.queue {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// remove drops the queue entry that is the same instance as file.
func (s *Service) remove(file *domain.UploadFile) {
	if file == nil {
		return
	}
	kept := s.queue[:0]
	for _, f := range s.queue {
		if f != file {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = kept
}

func readLines(ctx context.Context, file domain.UploadFile) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file.NativeFile == nil {
		return nil, fmt.Errorf("%w: %s has no content", domain.ErrDecode, file.Name)
	}

	rc, err := file.NativeFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrDecode, file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrDecode, file.Name, err)
	}

	lines, err := m3u.DecodeLines(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name, err)
	}
	return lines, nil
}
