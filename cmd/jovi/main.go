// Command jovi runs one jovi operator on an image and writes a PNG, or a
// JPEG when -output ends in .jpg or .jpeg.
//
// Without -input it works on a generated test card. With -frames above 1
// it writes a numbered sequence instead: the angle eases from 0 to -angle
// along -ease and the amount follows -wave.
package main

import (
	"flag"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/flowtyone/jovi"
	"github.com/flowtyone/jovi/anim"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (PNG, JPEG, GIF, BMP or TIFF); empty for a test card")
		output  = flag.String("output", "jovi.png", "output file")
		op      = flag.String("op", "transform", "operator: transform, blend, threshold, hsv, sphere, polar, fisheye, perspective, edges, emboss, sharpen, mirror")
		width   = flag.Int("width", 512, "test card and target width")
		height  = flag.Int("height", 512, "test card and target height")
		angle   = flag.Float64("angle", 30, "rotation in degrees")
		size    = flag.Float64("size", 1, "transform scale")
		edge    = flag.String("edge", "CLIP", "edge mode: CLIP, WRAP, WRAPX, WRAPY")
		blend   = flag.String("blend", "SCREEN", "blend operator")
		amount  = flag.Float64("amount", 0.5, "operator strength")
		mode    = flag.String("mode", "FIT", "scale mode: NONE, ASPECT, CROP, FIT")
		frames  = flag.Int("frames", 1, "number of frames to render")
		ease    = flag.String("ease", "CUBIC_IN_OUT", "easing curve for the angle across frames")
		wave    = flag.String("wave", "SIN", "wave driving the amount across frames")
		verbose = flag.Bool("v", false, "log operator parameters")
	)
	flag.Parse()

	if *verbose {
		jovi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := load(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	p := params{
		width:  *width,
		height: *height,
		angle:  *angle,
		size:   *size,
		edge:   *edge,
		blend:  *blend,
		amount: *amount,
		mode:   *mode,
	}

	if *frames > 1 {
		if err := animate(src, *op, p, *frames, *ease, *wave, *output); err != nil {
			log.Fatalf("Failed to animate %s: %v", *op, err)
		}
		return
	}

	out, err := run(src, *op, p)
	if err != nil {
		log.Fatalf("Failed to run %s: %v", *op, err)
	}

	if err := save(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s saved to %s (%dx%d)\n", *op, *output, out.Width(), out.Height())
}

// animate renders n frames of op, easing the angle and modulating the
// amount with a wave centered on the configured amount.
func animate(src *jovi.PixelBuffer, op string, p params, n int, easeName, waveName, output string) error {
	easeOp, err := anim.ParseEase(easeName)
	if err != nil {
		return err
	}
	waveOp, err := anim.ParseWave(waveName)
	if err != nil {
		return err
	}

	angles, err := anim.EaseSteps(easeOp, 0, p.angle, 1, n, anim.DefaultClip)
	if err != nil {
		return err
	}

	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	for i, angle := range angles {
		wp := anim.DefaultWaveParams()
		wp.Timestep = float64(i) / float64(n)
		wp.Amplitude = p.amount * 0.5
		wp.Offset = p.amount
		amount, err := anim.Wave(waveOp, wp)
		if err != nil {
			return err
		}

		fp := p
		fp.angle, fp.amount = angle, amount
		out, err := run(src, op, fp)
		if err != nil {
			return err
		}

		path := fmt.Sprintf("%s-%03d%s", base, i, ext)
		if err := save(path, out); err != nil {
			return err
		}
		log.Printf("frame %d/%d saved to %s (angle %.1f, amount %.3f)\n", i+1, n, path, angle, amount)
	}
	return nil
}

type params struct {
	width, height int
	angle, size   float64
	edge, blend   string
	amount        float64
	mode          string
}

func run(src *jovi.PixelBuffer, op string, p params) (*jovi.PixelBuffer, error) {
	mode, err := jovi.ParseScaleMode(p.mode)
	if err != nil {
		return nil, err
	}

	switch op {
	case "transform":
		edge, err := jovi.ParseEdgeMode(p.edge)
		if err != nil {
			return nil, err
		}
		return jovi.Transform(src, jovi.TransformParams{
			Angle:    p.angle,
			SizeX:    p.size,
			SizeY:    p.size,
			Edge:     edge,
			Width:    p.width,
			Height:   p.height,
			Mode:     mode,
			Resample: jovi.ResampleLanczos,
		}), nil
	case "blend":
		bop, err := jovi.ParseBlendOperator(p.blend)
		if err != nil {
			return nil, err
		}
		w, h := src.Bounds()
		other := jovi.Rotate(jovi.Mirror(src, 0.5, jovi.AxisHorizontal, false), p.angle)
		mask := jovi.Ellipse(w, h, 1, 1, jovi.White).Gray()
		return jovi.Blend(src, other, bop, p.width, p.height,
			jovi.WithMask(mask), jovi.WithAlpha(p.amount), jovi.WithScaleMode(mode)), nil
	case "threshold":
		return jovi.Threshold(src, p.amount, jovi.ThresholdBinary, jovi.AdaptiveNone, 3, 0), nil
	case "hsv":
		return jovi.HSV(src, p.amount, 1, 1), nil
	case "sphere":
		return jovi.RemapSphere(src, p.amount), nil
	case "polar":
		return jovi.RemapPolar(src), nil
	case "fisheye":
		return jovi.RemapFisheye(src, p.amount), nil
	case "perspective":
		return jovi.RemapPerspective(src, [4]jovi.Point{
			{X: 0.1, Y: 0.1}, {X: 0.7, Y: 0.3}, {X: 0.9, Y: 0.9}, {X: 0.1, Y: 0.9},
		}), nil
	case "edges":
		return jovi.EdgeDetect(src, 0.27, 0.6).PixelBuffer(), nil
	case "emboss":
		return jovi.Emboss(src, p.amount), nil
	case "sharpen":
		return jovi.UnsharpMask(src, 0, 1, p.amount, 0), nil
	case "mirror":
		return jovi.Mirror(src, p.amount, jovi.AxisHorizontal, false), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

func load(path string, w, h int) (*jovi.PixelBuffer, error) {
	if path == "" {
		return testCard(w, h), nil
	}
	return jovi.Load(path)
}

// testCard layers a few shapes so every operator has edges and color to
// work on.
func testCard(w, h int) *jovi.PixelBuffer {
	card := jovi.Quad(w, h, 1, 1, jovi.Color{R: 30, G: 60, B: 110})
	layers := []struct {
		shape *jovi.PixelBuffer
		op    jovi.BlendOperator
	}{
		{jovi.Ellipse(w, h, 0.7, 0.5, jovi.Color{R: 230, G: 80, B: 60}), jovi.BlendScreen},
		{jovi.Polygon(w, h, 0.6, 5, 0, jovi.Color{R: 250, G: 210, B: 40}), jovi.BlendMaximum},
		{jovi.Quad(w, h, 0.2, 0.9, jovi.Color{R: 40, G: 200, B: 120}), jovi.BlendAdd},
	}
	for _, l := range layers {
		card = jovi.Blend(card, l.shape, l.op, 0, 0, jovi.WithMask(l.shape.Gray()))
	}
	return card
}

// save picks the encoder from the file extension, PNG unless it names
// a JPEG.
func save(path string, p *jovi.PixelBuffer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return p.SaveJPEG(path, 92)
	default:
		return p.SavePNG(path)
	}
}
