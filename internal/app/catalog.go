package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
	"github.com/jpp0ca/PlaylistUploader-API/internal/logging"
	"github.com/jpp0ca/PlaylistUploader-API/internal/m3u"
	"github.com/jpp0ca/PlaylistUploader-API/internal/metrics"
)

// PlaylistKeyMarker must appear in a stored key for it to be listed.
const PlaylistKeyMarker = ".m3u"

// Catalog scans the store and returns every playlist whose key contains
// PlaylistKeyMarker. Entries that fail to decode are skipped.
func (s *Service) Catalog(ctx context.Context) (map[string]domain.Playlist, error) {
	entries, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list playlists: %v", domain.ErrPersistence, err)
	}

	catalog := make(map[string]domain.Playlist)
	for key, value := range entries {
		if !strings.Contains(key, PlaylistKeyMarker) {
			continue
		}
		playlist, err := m3u.Deserialize(value)
		if err != nil {
			metrics.CatalogSkippedTotal.Inc()
			logging.Warn("[catalog] skipping %s: %v", key, err)
			continue
		}
		catalog[key] = *playlist
	}

	return catalog, nil
}
