// Command sphgeomctl is a small operator tool exercising the sphgeom
// library end to end: encoding/decoding regions, indexing points into a
// pixelization, and relating two encoded regions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/sphgeom/codec"
	"github.com/katalvlaran/sphgeom/pixelization"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "index":
		err = runIndex(os.Args[2:])
	case "relate":
		err = runRelate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sphgeomctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: sphgeomctl <command> [flags]

commands:
  encode  -shape=circle|box -lon=deg -lat=deg -radius=deg     encode a region to base64
  decode  -region=base64                                      print a decoded region's bounding box
  index   -pixelization=htm|mq3c -level=N -lon=deg -lat=deg    print the pixel index and label for a point
  relate  -a=base64 -b=base64                                  print the relationship between two regions`)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	shape := fs.String("shape", "circle", "circle|box")
	lon := fs.Float64("lon", 0, "center longitude, degrees")
	lat := fs.Float64("lat", 0, "center latitude, degrees")
	radius := fs.Float64("radius", 1, "circle radius in degrees, or box half-width/half-height")
	if err := fs.Parse(args); err != nil {
		return err
	}

	center := s2math.LonLatFromDegrees(*lon, *lat)
	v := center.Vector3d()

	var r region.Region
	switch *shape {
	case "circle":
		r = region.NewCircle(v, s2math.AngleFromDegrees(*radius))
	case "box":
		half := s2math.AngleFromDegrees(*radius)
		r = region.NewBoxFromCenterHalfWidths(center, half, half)
	default:
		return fmt.Errorf("unknown shape %q", *shape)
	}

	fmt.Println(codec.EncodeToBase64(r))
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	enc := fs.String("region", "", "base64-encoded region")
	if err := fs.Parse(args); err != nil {
		return err
	}
	r, err := codec.DecodeBase64(*enc)
	if err != nil {
		return err
	}
	box := r.BoundingBox()
	fmt.Printf("bounding box: lon=[%.4f, %.4f] lat=[%.4f, %.4f] (radians)\n",
		box.Lon().A().Radians(), box.Lon().B().Radians(), box.Lat().A().Radians(), box.Lat().B().Radians())
	fmt.Println("empty:", r.IsEmpty())
	return nil
}

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	kind := fs.String("pixelization", "htm", "htm|mq3c")
	level := fs.Int("level", 8, "pixelization level")
	lon := fs.Float64("lon", 0, "longitude, degrees")
	lat := fs.Float64("lat", 0, "latitude, degrees")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := s2math.LonLatFromDegrees(*lon, *lat).Vector3d()

	var idx uint64
	var label string
	switch *kind {
	case "htm":
		h, err := pixelization.NewHtmPixelization(*level)
		if err != nil {
			return err
		}
		idx = h.Index(v)
		label = h.ToString(idx)
	case "mq3c":
		m, err := pixelization.NewMq3cPixelization(*level)
		if err != nil {
			return err
		}
		idx = m.Index(v)
		label = m.ToString(idx)
	default:
		return fmt.Errorf("unknown pixelization %q", *kind)
	}

	fmt.Printf("index=%d label=%s\n", idx, label)
	return nil
}

func runRelate(args []string) error {
	fs := flag.NewFlagSet("relate", flag.ExitOnError)
	a := fs.String("a", "", "base64-encoded region")
	b := fs.String("b", "", "base64-encoded region")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ra, err := codec.DecodeBase64(*a)
	if err != nil {
		return err
	}
	rb, err := codec.DecodeBase64(*b)
	if err != nil {
		return err
	}
	fmt.Println(region.Relate(ra, rb).String())
	return nil
}
