// SPDX-License-Identifier: MIT

// Command colorsom trains a colour Self-Organizing Map and writes the result
// as JSON, and optionally as a PNG with one pixel per cell.
//
// Usage:
//
//	colorsom -width 40 -height 40 -iterations 2000 -seed 7 -out map.json -png map.png
//	colorsom -colors "#FF0000,#00FF00,#0000FF" -out -
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/kohonen/colorsom"
	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

func main() {
	var (
		width      = flag.Int("width", 40, "map width in cells")
		height     = flag.Int("height", 40, "map height in cells")
		iterations = flag.Int("iterations", 1000, "training iterations")
		seed       = flag.Int64("seed", 0, "random seed (0 = fixed default)")
		rate       = flag.Float64("rate", 0.5, "starting learning rate, in (0,1]")
		colors     = flag.String("colors", "", "comma-separated #RRGGBB inputs (default palette if empty)")
		out        = flag.String("out", "-", "JSON output path, - for stdout")
		pngPath    = flag.String("png", "", "optional PNG output path")
		progress   = flag.Int("progress", 0, "log every N iterations (0 = off)")
	)
	flag.Parse()
	log.SetFlags(log.Ltime)

	inputs, err := parseInputs(*colors)
	if err != nil {
		log.Fatalf("colors: %v", err)
	}

	opts := []colorsom.Option{colorsom.WithSeed(*seed), colorsom.WithMaxLearningRate(*rate)}
	if *progress > 0 {
		every := *progress
		opts = append(opts, colorsom.WithObserver(func(e som.Event) {
			if e.Iteration%every == 0 || e.Iteration == e.Total {
				log.Printf("iteration %d/%d radius=%.3f rate=%.3f bmu=%s updated=%d",
					e.Iteration, e.Total, e.Radius, e.LearningRate, e.BMU.Position(), e.Updated)
			}
		}))
	}
	s, err := colorsom.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	log.Printf("training %d×%d map on %d colours for %d iterations", *width, *height, len(inputs), *iterations)
	if err = s.Start(inputs, *iterations, nil); err != nil {
		log.Fatalf("train: %v", err)
	}

	if err = writeJSON(s.Map(), *out); err != nil {
		log.Fatalf("json: %v", err)
	}
	if *pngPath != "" {
		if err = writePNG(s, *pngPath); err != nil {
			log.Fatalf("png: %v", err)
		}
		log.Printf("wrote %s", *pngPath)
	}
}

// parseInputs turns the -colors flag into training vectors.
func parseInputs(raw string) ([]*vector.Vector, error) {
	if strings.TrimSpace(raw) == "" {
		return colorsom.DefaultPalette(), nil
	}
	var inputs []*vector.Vector
	for _, part := range strings.Split(raw, ",") {
		v, err := colorsom.ParseHexColor(part)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, v)
	}

	return inputs, nil
}

func writeJSON(m *som.Map, path string) error {
	mj, err := colorsom.NewMapJSON(m)
	if err != nil {
		return err
	}
	data, err := mj.ToJSON()
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(f, string(data)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writePNG(s *colorsom.SOM, path string) error {
	img, err := colorsom.Image(s.Map(), s.Width(), s.Height())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
