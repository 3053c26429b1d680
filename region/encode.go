package region

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Type codes for the self-describing binary format.
const (
	typeBox          = 'b'
	typeCircle       = 'c'
	typeEllipse      = 'e'
	typeConvexPolygon = 'p'
	typeUnion        = 'u'
	typeIntersection = 'i'
	typeHEALPixel    = 'h'
)

// ErrBadEncoding indicates a byte string whose declared length, type
// code, or shape does not match the binary format.
var ErrBadEncoding = errors.New("region: malformed encoding")

// ErrHEALPixelUnsupported indicates a decode hit a valid 'h' HEALPixel
// tag; the wire format recognizes the tag but this module defines no
// constructible Go HEALPixel region type (SPEC_FULL.md §5).
var ErrHEALPixelUnsupported = errors.New("region: HEALPixel tag is recognized but not decodable to a concrete type")

func putFloat64(buf []byte, v float64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return append(buf, b[:]...)
}

func getFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func encodeCircle(c Circle) []byte {
	buf := make([]byte, 0, 1+5*8)
	buf = append(buf, typeCircle)
	buf = putFloat64(buf, c.center.X())
	buf = putFloat64(buf, c.center.Y())
	buf = putFloat64(buf, c.center.Z())
	buf = putFloat64(buf, c.scl)
	buf = putFloat64(buf, c.OpeningAngle().Radians())
	return buf
}

func decodeCircle(b []byte) (Circle, error) {
	if len(b) != 1+5*8 {
		return Circle{}, fmt.Errorf("%w: circle needs %d bytes, got %d", ErrBadEncoding, 1+5*8, len(b))
	}
	cx := getFloat64(b[1:9])
	cy := getFloat64(b[9:17])
	cz := getFloat64(b[17:25])
	scl := getFloat64(b[25:33])
	center, err := s2math.NewUnitVector3d(cx, cy, cz)
	if err != nil {
		return Circle{}, fmt.Errorf("%w: circle center: %v", ErrBadEncoding, err)
	}
	return NewCircleFromSCL(center, scl), nil
}

func encodeBox(b Box) []byte {
	buf := make([]byte, 0, 1+4*8)
	buf = append(buf, typeBox)
	buf = putFloat64(buf, b.lon.A().Radians())
	buf = putFloat64(buf, b.lon.B().Radians())
	buf = putFloat64(buf, b.lat.A().Radians())
	buf = putFloat64(buf, b.lat.B().Radians())
	return buf
}

func decodeBox(raw []byte) (Box, error) {
	if len(raw) != 1+4*8 {
		return Box{}, fmt.Errorf("%w: box needs %d bytes, got %d", ErrBadEncoding, 1+4*8, len(raw))
	}
	lonA := getFloat64(raw[1:9])
	lonB := getFloat64(raw[9:17])
	latA := getFloat64(raw[17:25])
	latB := getFloat64(raw[25:33])
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(lonA, lonB)
	if err != nil {
		return Box{}, fmt.Errorf("%w: box longitude: %v", ErrBadEncoding, err)
	}
	lat := interval.NewAngleInterval(s2math.Angle(latA), s2math.Angle(latB))
	return NewBox(lon, lat), nil
}

func encodeEllipse(e Ellipse) []byte {
	buf := make([]byte, 0, 1+7*8)
	buf = append(buf, typeEllipse)
	buf = putFloat64(buf, e.focus1.X())
	buf = putFloat64(buf, e.focus1.Y())
	buf = putFloat64(buf, e.focus1.Z())
	buf = putFloat64(buf, e.focus2.X())
	buf = putFloat64(buf, e.focus2.Y())
	buf = putFloat64(buf, e.focus2.Z())
	buf = putFloat64(buf, e.alpha.Radians())
	return buf
}

func decodeEllipse(raw []byte) (Ellipse, error) {
	if len(raw) != 1+7*8 {
		return Ellipse{}, fmt.Errorf("%w: ellipse needs %d bytes, got %d", ErrBadEncoding, 1+7*8, len(raw))
	}
	f1, err := s2math.NewUnitVector3d(getFloat64(raw[1:9]), getFloat64(raw[9:17]), getFloat64(raw[17:25]))
	if err != nil {
		return Ellipse{}, fmt.Errorf("%w: ellipse focus1: %v", ErrBadEncoding, err)
	}
	f2, err := s2math.NewUnitVector3d(getFloat64(raw[25:33]), getFloat64(raw[33:41]), getFloat64(raw[41:49]))
	if err != nil {
		return Ellipse{}, fmt.Errorf("%w: ellipse focus2: %v", ErrBadEncoding, err)
	}
	alpha := getFloat64(raw[49:57])
	return NewEllipse(f1, f2, s2math.Angle(alpha)), nil
}

func encodeConvexPolygon(p ConvexPolygon) []byte {
	n := len(p.vertices)
	buf := make([]byte, 0, 1+24*n)
	buf = append(buf, typeConvexPolygon)
	for _, v := range p.vertices {
		buf = putFloat64(buf, v.X())
		buf = putFloat64(buf, v.Y())
		buf = putFloat64(buf, v.Z())
	}
	return buf
}

// decodeConvexPolygon trusts each stored triple as already-normalized
// rather than feeding it back through the normalizing constructor: doing
// the latter would drift the decoded vertices by a rounding error on
// every encode/decode round-trip (see DESIGN.md, "Codec identity").
// Triples far from the unit sphere are still rejected as malformed.
func decodeConvexPolygon(raw []byte) (ConvexPolygon, error) {
	if len(raw) < 1 || (len(raw)-1)%24 != 0 {
		return ConvexPolygon{}, fmt.Errorf("%w: convex polygon length %d not 1+24n", ErrBadEncoding, len(raw))
	}
	n := (len(raw) - 1) / 24
	vertices := make([]s2math.UnitVector3d, 0, n)
	for i := 0; i < n; i++ {
		off := 1 + i*24
		x, y, z := getFloat64(raw[off:off+8]), getFloat64(raw[off+8:off+16]), getFloat64(raw[off+16:off+24])
		norm := math.Sqrt(x*x + y*y + z*z)
		if math.IsNaN(norm) || math.Abs(norm-1) > 1e-6 {
			return ConvexPolygon{}, fmt.Errorf("%w: convex polygon vertex %d is not unit-length", ErrBadEncoding, i)
		}
		vertices = append(vertices, s2math.UnitVector3dFromNormalizedComponents(x, y, z))
	}
	return ConvexPolygon{vertices: vertices}, nil
}

func encodeUnion(u UnionRegion) []byte    { return encodeCompound(typeUnion, u.children) }
func encodeIntersection(x IntersectionRegion) []byte { return encodeCompound(typeIntersection, x.children) }

// encodeCompound writes 1 + Σ(8 + operand-length + operand): an 8-byte
// little-endian length prefix before each child's encoding.
func encodeCompound(tag byte, children []Region) []byte {
	buf := []byte{tag}
	for _, c := range children {
		enc := c.Encode()
		var lenBytes [8]byte
		binary.LittleEndian.PutUint64(lenBytes[:], uint64(len(enc)))
		buf = append(buf, lenBytes[:]...)
		buf = append(buf, enc...)
	}
	return buf
}

func decodeCompound(raw []byte) ([]Region, error) {
	children := make([]Region, 0)
	pos := 1
	for pos < len(raw) {
		if pos+8 > len(raw) {
			return nil, fmt.Errorf("%w: compound region truncated length prefix", ErrBadEncoding)
		}
		n := binary.LittleEndian.Uint64(raw[pos : pos+8])
		pos += 8
		end := pos + int(n)
		if end < pos || end > len(raw) {
			return nil, fmt.Errorf("%w: compound region operand length overruns buffer", ErrBadEncoding)
		}
		child, err := Decode(raw[pos:end])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		pos = end
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: compound region has no operands", ErrBadEncoding)
	}
	return children, nil
}

// Decode parses a self-describing binary region encoding, dispatching on
// its leading type-code byte.
func Decode(raw []byte) (Region, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty byte string", ErrBadEncoding)
	}
	switch raw[0] {
	case typeBox:
		return decodeBox(raw)
	case typeCircle:
		return decodeCircle(raw)
	case typeEllipse:
		return decodeEllipse(raw)
	case typeConvexPolygon:
		return decodeConvexPolygon(raw)
	case typeUnion:
		children, err := decodeCompound(raw)
		if err != nil {
			return nil, err
		}
		u, err := NewUnionRegion(children)
		if err != nil {
			return nil, err
		}
		return u, nil
	case typeIntersection:
		children, err := decodeCompound(raw)
		if err != nil {
			return nil, err
		}
		x, err := NewIntersectionRegion(children)
		if err != nil {
			return nil, err
		}
		return x, nil
	case typeHEALPixel:
		return nil, ErrHEALPixelUnsupported
	default:
		return nil, fmt.Errorf("%w: unrecognized type code %q", ErrBadEncoding, raw[0])
	}
}
