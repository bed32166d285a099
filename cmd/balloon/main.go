// Command balloon renders a speech balloon outline to SVG or PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/gogpu/balloon"
	"github.com/gogpu/balloon/internal/config"
)

var errUnknownColor = errors.New("unknown color name")

type options struct {
	configPath string
	format     string
	output     string
	edge       string
	offset     float64
	radius     string
	margin     float64
	fill       string
	background string
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "balloon.yaml", "YAML balloon description (optional)")
	flag.StringVar(&opts.format, "format", "svg", "output format: svg or png")
	flag.StringVar(&opts.output, "output", "", "output file (default balloon.<format>)")
	flag.StringVar(&opts.edge, "edge", "", "stem edge: top, left, bottom or right")
	flag.Float64Var(&opts.offset, "offset", math.NaN(), "stem offset from the middle of its edge")
	flag.StringVar(&opts.radius, "radius", "", `corner radius: "oval", "none" or a number`)
	flag.Float64Var(&opts.margin, "margin", 4, "empty space around the balloon")
	flag.StringVar(&opts.fill, "fill", "steelblue", "fill color (SVG color name)")
	flag.StringVar(&opts.background, "background", "white", "png background color (SVG color name)")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	balloon.SetLogger(logger)

	if err := run(opts); err != nil {
		logger.Error("balloon failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	resolved, err := resolve(opts)
	if err != nil {
		return err
	}

	var path *balloon.Path
	if resolved.Inside {
		path = balloon.OutlineInRect(resolved.Rect, resolved.Configuration)
	} else {
		path = balloon.Outline(resolved.Rect, resolved.Configuration)
	}

	// Move the outline so its bounds start at (margin, margin).
	bounds := path.TightBounds()
	path = path.Transform(balloon.Translate(opts.margin-bounds.Min.X, opts.margin-bounds.Min.Y))
	canvas := balloon.XYWH(0, 0, bounds.Width()+2*opts.margin, bounds.Height()+2*opts.margin)

	output := opts.output
	if output == "" {
		output = "balloon." + opts.format
	}

	switch strings.ToLower(opts.format) {
	case "svg":
		fill, err := lookupColor(opts.fill)
		if err != nil {
			return err
		}
		doc := balloon.SVGDocument(path, canvas, hexColor(fill))
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
	case "png":
		if err := writePNG(output, path, canvas, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	balloon.Logger().Info("balloon written",
		"output", output,
		"edge", resolved.Configuration.Stem.Edge,
		"radius", resolved.Configuration.CornerRadius,
		"width", canvas.Width(),
		"height", canvas.Height())
	return nil
}

// resolve loads the optional config file and applies flag overrides.
func resolve(opts options) (*config.Resolved, error) {
	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.configPath, err)
	}

	c := resolved.Configuration
	if opts.edge != "" {
		edge, err := balloon.ParseEdge(opts.edge)
		if err != nil {
			return nil, err
		}
		c = c.WithStemEdge(edge)
	}
	if !math.IsNaN(opts.offset) {
		c = c.WithStemOffset(opts.offset)
	}
	if opts.radius != "" {
		radius, err := config.ParseCornerRadius(opts.radius)
		if err != nil {
			return nil, err
		}
		c = c.WithCornerRadius(radius)
	}
	resolved.Configuration = c
	return resolved, nil
}

func writePNG(output string, path *balloon.Path, canvas balloon.Rect, opts options) error {
	fill, err := lookupColor(opts.fill)
	if err != nil {
		return err
	}
	background, err := lookupColor(opts.background)
	if err != nil {
		return err
	}

	r := image.Rect(0, 0, int(math.Ceil(canvas.Width())), int(math.Ceil(canvas.Height())))
	mask, err := path.Rasterize(r)
	if err != nil {
		return err
	}

	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.NewUniform(background), image.Point{}, draw.Src)
	draw.DrawMask(dst, r, image.NewUniform(fill), image.Point{}, mask, r.Min, draw.Over)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", output, err)
	}
	return f.Close()
}

func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", errUnknownColor, name)
	}
	return c, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
