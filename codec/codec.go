package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sphgeom/region"
)

// ErrEmptyContainer indicates a base64 container decoded to zero regions.
var ErrEmptyContainer = errors.New("codec: base64 container is empty")

// ErrMalformedExpression indicates an overlap expression's `&`/`|` group
// structure could not be parsed.
var ErrMalformedExpression = errors.New("codec: malformed overlap expression")

// EncodeToBase64 returns the base64 (standard encoding) rendering of a
// single region's binary encoding.
func EncodeToBase64(r region.Region) string {
	return base64.StdEncoding.EncodeToString(r.Encode())
}

// EncodeRegionsToBase64 joins each region's base64 encoding with ':',
// the multi-region container delimiter.
func EncodeRegionsToBase64(regions []region.Region) string {
	parts := make([]string, len(regions))
	for i, r := range regions {
		parts[i] = EncodeToBase64(r)
	}
	return strings.Join(parts, ":")
}

// DecodeBase64 parses a base64 container: a single region, or several
// ':'-delimited regions decoded as a UnionRegion.
func DecodeBase64(s string) (region.Region, error) {
	parts := strings.Split(s, ":")
	regions := make([]region.Region, 0, len(parts))
	for _, p := range parts {
		raw, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64 segment %q: %v", region.ErrBadEncoding, p, err)
		}
		r, err := region.Decode(raw)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	if len(regions) == 0 {
		return nil, ErrEmptyContainer
	}
	if len(regions) == 1 {
		return regions[0], nil
	}
	return region.NewUnionRegion(regions)
}

// EvaluateOverlapExpression parses and evaluates `A & B | C & D | …`,
// where each operand is a base64-encoded region, each `X & Y` group is a
// pairwise overlap query, and groups are OR-ed together with
// short-circuit evaluation once a group is known definitely true.
func EvaluateOverlapExpression(expr string) (region.Overlap, error) {
	groups := strings.Split(expr, "|")
	result := region.OverlapFalse
	for _, g := range groups {
		operands := strings.Split(g, "&")
		if len(operands) != 2 {
			return region.OverlapUnknown, fmt.Errorf("%w: group %q does not have exactly two operands", ErrMalformedExpression, g)
		}
		a, err := DecodeBase64(strings.TrimSpace(operands[0]))
		if err != nil {
			return region.OverlapUnknown, err
		}
		b, err := DecodeBase64(strings.TrimSpace(operands[1]))
		if err != nil {
			return region.OverlapUnknown, err
		}
		groupResult := a.Overlaps(b)
		result = orOverlap(result, groupResult)
		if result == region.OverlapTrue {
			return region.OverlapTrue, nil
		}
	}
	return result, nil
}

// orOverlap combines two tri-state overlap results: true dominates,
// then unknown, then false — mirroring how a proof of "true" in any
// group proves the OR while an unknown anywhere (with no true) leaves
// the overall result unresolved.
func orOverlap(a, b region.Overlap) region.Overlap {
	if a == region.OverlapTrue || b == region.OverlapTrue {
		return region.OverlapTrue
	}
	if a == region.OverlapUnknown || b == region.OverlapUnknown {
		return region.OverlapUnknown
	}
	return region.OverlapFalse
}
