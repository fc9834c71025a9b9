// Package m3u parses M3U/M3U8 playlist text and encodes playlists for storage.
package m3u

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jpp0ca/PlaylistUploader-API/internal/domain"
)

// Directive prefixes
const (
	DirectiveHeader = "#EXTM3U"
	DirectiveInfo   = "#EXTINF:"
	DirectiveGroup  = "#EXTGRP:"
	DirectiveVLCOpt = "#EXTVLCOPT:"
	CommentPrefix   = "#"
)

// Well-known #EXTINF attributes
const (
	attrTvgID      = "tvg-id"
	attrTvgName    = "tvg-name"
	attrTvgLogo    = "tvg-logo"
	attrGroupTitle = "group-title"
)

var attributePattern = regexp.MustCompile(`([A-Za-z0-9_-]+)="([^"]*)"`)

// Parser is a stateless M3U/M3U8 parser.
type Parser struct{}

// NewParser creates a new M3U parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts the lines of an M3U document into a Playlist. Blank lines and
// unknown comments are skipped. A stream URL must be preceded by #EXTINF.
func (p *Parser) Parse(lines []string) (*domain.Playlist, error) {
	playlist := &domain.Playlist{Segments: make([]domain.Segment, 0)}

	var pending *domain.Segment
	pendingLine := 0

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, DirectiveHeader):
			attrs := parseAttributes(line[len(DirectiveHeader):])
			if len(attrs) > 0 {
				if playlist.Header == nil {
					playlist.Header = make(map[string]string, len(attrs))
				}
				for k, v := range attrs {
					playlist.Header[k] = v
				}
			}

		case strings.HasPrefix(line, DirectiveInfo):
			if pending != nil {
				return nil, &domain.ParseError{Line: pendingLine, Content: strings.TrimSpace(lines[pendingLine-1]), Reason: "#EXTINF without stream URL"}
			}
			seg, reason := parseInfo(line[len(DirectiveInfo):])
			if reason != "" {
				return nil, &domain.ParseError{Line: lineNo, Content: line, Reason: reason}
			}
			pending = seg
			pendingLine = lineNo

		case strings.HasPrefix(line, DirectiveGroup):
			if pending != nil && pending.Group == "" {
				pending.Group = strings.TrimSpace(line[len(DirectiveGroup):])
			}

		case strings.HasPrefix(line, DirectiveVLCOpt):
			if pending == nil {
				continue
			}
			key, value, ok := strings.Cut(line[len(DirectiveVLCOpt):], "=")
			if !ok || key == "" {
				continue
			}
			if pending.Options == nil {
				pending.Options = make(map[string]string)
			}
			pending.Options[strings.TrimSpace(key)] = strings.TrimSpace(value)

		case strings.HasPrefix(line, CommentPrefix):
			continue

		default:
			if pending == nil {
				return nil, &domain.ParseError{Line: lineNo, Content: line, Reason: "stream URL without preceding #EXTINF"}
			}
			pending.URL = line
			if pending.Name == "" {
				pending.Name = pending.TvgName
			}
			if pending.Name == "" {
				pending.Name = line
			}
			playlist.Segments = append(playlist.Segments, *pending)
			pending = nil
		}
	}

	if pending != nil {
		return nil, &domain.ParseError{Line: pendingLine, Content: strings.TrimSpace(lines[pendingLine-1]), Reason: "#EXTINF without stream URL"}
	}

	return playlist, nil
}

// parseInfo parses the part of an #EXTINF line after the colon:
// <duration> [key="value" ...],<title>
// It returns a non-empty reason when the line is malformed.
func parseInfo(rest string) (*domain.Segment, string) {
	info, title := splitTitle(rest)
	info = strings.TrimSpace(info)

	fields := strings.Fields(info)
	if len(fields) == 0 {
		return nil, "missing duration"
	}
	duration, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, "invalid duration " + strconv.Quote(fields[0])
	}

	seg := &domain.Segment{
		Name:     strings.TrimSpace(title),
		Duration: duration,
	}

	attrs := parseAttributes(info[len(fields[0]):])
	if len(attrs) > 0 {
		seg.Attributes = attrs
		seg.TvgID = attrs[attrTvgID]
		seg.TvgName = attrs[attrTvgName]
		seg.TvgLogo = attrs[attrTvgLogo]
		seg.Group = attrs[attrGroupTitle]
	}

	return seg, ""
}

// splitTitle splits at the first comma that is not inside a quoted attribute
// value. Without a comma the whole input is info and the title is empty.
func splitTitle(rest string) (string, string) {
	inQuotes := false
	for i, r := range rest {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				return rest[:i], rest[i+1:]
			}
		}
	}
	return rest, ""
}

func parseAttributes(s string) map[string]string {
	matches := attributePattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(matches))
	for _, m := range matches {
		attrs[strings.ToLower(m[1])] = m[2]
	}
	return attrs
}
