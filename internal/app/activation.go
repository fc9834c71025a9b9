package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/logging"
	"github.com/jpp0ca/PlaylistUploader-API/internal/m3u"
	"github.com/jpp0ca/PlaylistUploader-API/internal/metrics"
	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"
)

// Option keys read from #EXTVLCOPT directives.
const (
	optUserAgent = "http-user-agent"
	optReferrer  = "http-referrer"
)

// activateUpload runs parse, persist and hydrate for an uploaded file. The
// session is only hydrated once the playlist has been persisted.
func (s *Service) activateUpload(ctx context.Context, parser ports.PlaylistParser, name string, lines []string) (*domain.Activation, error) {
	start := time.Now()
	source := domain.ActivationSourceUpload

	s.activateMu.Lock()
	defer s.activateMu.Unlock()

	// Step 1: Parse
	playlist, err := parser.Parse(lines)
	if err != nil {
		if !errors.Is(err, domain.ErrParse) {
			err = fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
		s.observe(source, "parse_error", start)
		logging.Error("[activation] failed to parse %s: %v", name, err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	// Step 2: Persist under the file name
	value, err := m3u.Serialize(playlist)
	if err != nil {
		s.observe(source, "persistence_error", start)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := s.store.Set(ctx, name, value); err != nil {
		s.observe(source, "persistence_error", start)
		logging.Error("[activation] failed to persist %s: %v", name, err)
		return nil, fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, name, err)
	}
	logging.Info("[activation] saved playlist %s with %d segments", name, len(playlist.Segments))

	// Step 3: Hydrate the session
	activation, err := s.hydrate(ctx, name, source, playlist)
	if err != nil {
		s.observe(source, "session_error", start)
		return nil, err
	}

	s.observe(source, "success", start)
	return activation, nil
}

// ActivateStored hydrates the session from a playlist already in the catalog.
func (s *Service) ActivateStored(ctx context.Context, name string) (*domain.Activation, error) {
	start := time.Now()
	source := domain.ActivationSourceStored

	catalog, err := s.Catalog(ctx)
	if err != nil {
		s.observe(source, "persistence_error", start)
		return nil, err
	}
	playlist, ok := catalog[name]
	if !ok {
		s.observe(source, "not_found", start)
		return nil, fmt.Errorf("%w: %s", domain.ErrPlaylistNotFound, name)
	}

	s.activateMu.Lock()
	defer s.activateMu.Unlock()

	activation, err := s.hydrate(ctx, name, source, &playlist)
	if err != nil {
		s.observe(source, "session_error", start)
		return nil, err
	}

	s.observe(source, "success", start)
	return activation, nil
}

// hydrate appends one channel per segment, in order, then emits navigation
// requests: one per channel, or a single one when NavigateOnce is set.
func (s *Service) hydrate(ctx context.Context, key string, source domain.ActivationSource, playlist *domain.Playlist) (*domain.Activation, error) {
	channels := make([]domain.Channel, 0, len(playlist.Segments))
	for _, seg := range playlist.Segments {
		channels = append(channels, newChannel(s.newID(), key, seg))
	}

	if len(channels) > 0 {
		if err := s.session.Add(ctx, channels...); err != nil {
			logging.Error("[activation] failed to hydrate session from %s: %v", key, err)
			return nil, fmt.Errorf("%w: %v", domain.ErrSession, err)
		}
		metrics.SessionChannels.Add(float64(len(channels)))
	}

	requests := len(channels)
	if s.opts.NavigateOnce && requests > 1 {
		requests = 1
	}
	for i := 0; i < requests; i++ {
		s.navigator.RequestNavigation(s.opts.NavigationRoute)
		metrics.NavigationRequestsTotal.Inc()
	}

	logging.Info("[activation] activated %s: %d channels, %d navigation request(s)", key, len(channels), requests)

	activation := &domain.Activation{
		Key:                key,
		Source:             source,
		SegmentCount:       len(playlist.Segments),
		ChannelsAdded:      len(channels),
		NavigationRequests: requests,
	}
	if requests > 0 {
		activation.NavigateTo = s.opts.NavigationRoute
	}
	return activation, nil
}

func newChannel(id, source string, seg domain.Segment) domain.Channel {
	return domain.Channel{
		ID:         id,
		Name:       seg.Name,
		URL:        seg.URL,
		Group:      seg.Group,
		Logo:       seg.TvgLogo,
		EpgID:      seg.TvgID,
		UserAgent:  seg.Options[optUserAgent],
		Referrer:   seg.Options[optReferrer],
		SourceList: source,
	}
}

func (s *Service) observe(source domain.ActivationSource, outcome string, start time.Time) {
	metrics.ActivationsTotal.WithLabelValues(string(source), outcome).Inc()
	metrics.ActivationDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
}
