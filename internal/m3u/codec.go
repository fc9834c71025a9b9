package m3u

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// DecodeLines decodes uploaded bytes to text and splits it on "\n". Trailing
// empty lines are kept. UTF-16 input is accepted when it carries a BOM.
func DecodeLines(data []byte) ([]string, error) {
	var text []byte

	if bytes.HasPrefix(data, utf16LEBOM) || bytes.HasPrefix(data, utf16BEBOM) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
		}
		text = decoded
	} else {
		text = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(text) {
			return nil, fmt.Errorf("%w: content is not valid UTF-8 text", domain.ErrDecode)
		}
	}

	if bytes.IndexByte(text, 0) >= 0 {
		return nil, fmt.Errorf("%w: content contains binary data", domain.ErrDecode)
	}

	return strings.Split(string(text), "\n"), nil
}

// Serialize encodes a playlist in its canonical stored form.
func Serialize(playlist *domain.Playlist) (string, error) {
	if playlist == nil {
		return "", fmt.Errorf("serialize: nil playlist")
	}
	out := *playlist
	if out.Segments == nil {
		out.Segments = make([]domain.Segment, 0)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("serialize playlist: %w", err)
	}
	return string(data), nil
}

// Deserialize decodes a stored playlist.
func Deserialize(value string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := json.Unmarshal([]byte(value), &playlist); err != nil {
		return nil, fmt.Errorf("deserialize playlist: %w", err)
	}
	if playlist.Segments == nil {
		playlist.Segments = make([]domain.Segment, 0)
	}
	return &playlist, nil
}
