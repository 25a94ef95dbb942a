// Command hoverframes renders one hover session to a numbered PNG
// sequence: the pointer enters, stays for a number of frames, then leaves
// and the sequence ends once every cell has settled.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pixelhover"
	"github.com/gogpu/pixelhover/config"
	"github.com/gogpu/pixelhover/internal/frameloop"
)

func main() {
	var (
		width      = flag.Float64("width", 240, "tile width in logical units")
		height     = flag.Float64("height", 120, "tile height in logical units")
		ratio      = flag.Float64("ratio", 2, "device pixel ratio")
		hover      = flag.Int("hover", 90, "frames before the pointer leaves")
		maxFrames  = flag.Int("frames", 400, "maximum number of frames")
		output     = flag.String("output", "frames", "output directory")
		label      = flag.String("label", "Research Engineer", "caption drawn under the tile")
		configPath = flag.String("config", "", "HCL configuration file")
		seed       = flag.Uint64("seed", 1, "random seed")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	pixelhover.SetLogger(log)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Error("load config", "err", err)
			os.Exit(1)
		}
	}

	r := renderer{
		el:     &element{size: pixelhover.Size{Width: *width, Height: *height}, ratio: *ratio},
		cfg:    cfg,
		label:  *label,
		output: *output,
	}
	n, err := r.run(*hover, *maxFrames, *seed)
	if err != nil {
		log.Error("render", "err", err)
		os.Exit(1)
	}
	log.Info("frames written", "count", n, "dir", *output)
}

var errNoSurface = errors.New("hoverframes: element has no drawable surface")

// element is a fixed-size pixelhover.Element whose pointer is scripted.
type element struct {
	size     pixelhover.Size
	ratio    float64
	canvas   *pixelhover.Canvas
	observer pixelhover.Observer
}

func (e *element) Bounds() pixelhover.Size { return e.size }
func (e *element) PixelRatio() float64     { return e.ratio }

func (e *element) Surface() pixelhover.Surface {
	if e.canvas == nil {
		return nil
	}
	return e.canvas
}

func (e *element) Observe(o pixelhover.Observer) func() {
	e.observer = o
	return func() { e.observer = nil }
}

type renderer struct {
	el     *element
	cfg    config.Config
	label  string
	output string
	face   text.Face
}

func (r *renderer) run(hoverFrames, maxFrames int, seed uint64) (int, error) {
	if err := os.MkdirAll(r.output, 0o755); err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return 0, fmt.Errorf("load font: %w", err)
	}
	defer src.Close()
	r.face = src.Face(14 * r.el.ratio)

	r.el.canvas = pixelhover.NewCanvas()
	defer r.el.canvas.Close()

	var frames frameloop.Queue
	a := pixelhover.AttachWith(r.el, &frames,
		[]pixelhover.AttachOption{pixelhover.WithRand(rand.New(rand.NewPCG(seed, seed)))},
		r.cfg.HoverOptions(r.cfg.Theme)...)
	defer a.Detach()
	if !a.Active() {
		return 0, errNoSurface
	}

	r.el.observer.OnEnter()
	n := 0
	for ; n < maxFrames; n++ {
		if n == hoverFrames {
			r.el.observer.OnLeave()
		}
		if err := r.write(n); err != nil {
			return n, err
		}
		if frames.Pending() == 0 {
			return n + 1, nil
		}
		frames.Tick()
	}
	return n, nil
}

// write composites the canvas over the theme background, adds the caption
// and saves frame n.
func (r *renderer) write(n int) error {
	img := r.el.canvas.Image()
	if img == nil {
		return fmt.Errorf("frame %d: empty canvas", n)
	}
	p := r.cfg.Palettes[r.cfg.Theme]
	bounds := img.Bounds()
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, image.NewUniform(gg.Hex(p.Background).Color()), image.Point{}, draw.Src)
	draw.Draw(frame, bounds, img, bounds.Min, draw.Over)

	dc := gg.NewContextForImage(frame)
	defer dc.Close()
	dc.SetFont(r.face)
	dc.SetColor(gg.Hex(p.Foreground).Color())
	dc.DrawStringAnchored(r.label, float64(bounds.Dx())/2, float64(bounds.Dy())/2, 0.5, 0.5)

	path := filepath.Join(r.output, fmt.Sprintf("frame_%04d.png", n))
	return dc.SavePNG(path)
}
