package markerpack

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxStableID is the largest id a stable dictionary marker can carry.
// Stable ids must fit the low field of a packed word, so ids at or above
// 1<<LowBits spill into temporary markers instead.
const MaxStableID = LowMask

var (
	ErrMalformedMarker = errors.New("malformed marker")
	ErrMarkerRange     = errors.New("marker id out of range")
)

// MarkerKind tells stable dictionary markers from temporary ones.
type MarkerKind byte

const (
	KindNone MarkerKind = iota
	KindStable
	KindTemp
)

var kindPrefix = [...]byte{KindStable: 'S', KindTemp: 'T'}

// Marker is a dictionary token such as "S12" or "T3".
// The zero Marker stands for "no marker" and renders as "".
type Marker struct {
	Kind MarkerKind
	ID   uint16
}

// ParseMarker parses a marker token.
//
// Stable ids must be in [1, MaxStableID]; temporary ids in [1, 0xFFFF].
// Failures wrap ErrMalformedMarker or ErrMarkerRange.
func ParseMarker(tok string) (Marker, error) {
	if len(tok) < 2 {
		return Marker{}, fmt.Errorf("%w: %q", ErrMalformedMarker, tok)
	}

	var m Marker
	switch tok[0] {
	case 'S':
		m.Kind = KindStable
	case 'T':
		m.Kind = KindTemp
	default:
		return Marker{}, fmt.Errorf("%w: %q: unknown prefix", ErrMalformedMarker, tok)
	}

	id, err := strconv.ParseUint(tok[1:], 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return Marker{}, fmt.Errorf("%w: %q", ErrMarkerRange, tok)
		}
		return Marker{}, fmt.Errorf("%w: %q: %v", ErrMalformedMarker, tok, err)
	}

	limit := uint64(0xFFFF)
	if m.Kind == KindStable {
		limit = MaxStableID
	}
	if id == 0 || id > limit {
		return Marker{}, fmt.Errorf("%w: %q not in [1, %d]", ErrMarkerRange, tok, limit)
	}

	m.ID = uint16(id)
	return m, nil
}

func (m Marker) String() string {
	if m.Kind == KindNone || int(m.Kind) >= len(kindPrefix) {
		return ""
	}
	return string(kindPrefix[m.Kind]) + strconv.FormatUint(uint64(m.ID), 10)
}

// PackID is the value a marker contributes to a packed pair:
// its id for stable markers, 0 for anything else.
func (m Marker) PackID() uint16 {
	if m.Kind != KindStable {
		return 0
	}
	return m.ID
}

// PackMarkerPair packs two marker tokens into one word.
//
// A token that does not start with 'S' (a temporary marker or a plain word)
// contributes 0. A token that starts with 'S' but does not parse as a stable
// marker is an error.
func PackMarkerPair(m1, m2 string) (uint32, error) {
	id1, err := stableID(m1)
	if err != nil {
		return 0, err
	}
	id2, err := stableID(m2)
	if err != nil {
		return 0, err
	}
	return PackMarkers(id1, id2), nil
}

// UnpackMarkerPair reads both halves of a packed word as stable markers.
// A half that is 0 comes back as the zero Marker.
func UnpackMarkerPair(packed uint32) (Marker, Marker) {
	s1, s2 := UnpackMarkers(packed)
	return stableMarker(s1), stableMarker(s2)
}

func stableID(tok string) (uint16, error) {
	if len(tok) == 0 || tok[0] != 'S' {
		return 0, nil
	}
	m, err := ParseMarker(tok)
	if err != nil {
		return 0, err
	}
	return m.PackID(), nil
}

func stableMarker(id uint16) Marker {
	if id == 0 {
		return Marker{}
	}
	return Marker{Kind: KindStable, ID: id}
}
