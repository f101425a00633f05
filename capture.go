package dusk

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Capture queues a labeled capture of the final composite texture. The PNG
// is written to Config.CaptureDir after the current frame finishes, with a
// timestamped filename.
func (p *Pipeline) Capture(label string) {
	p.captureQueue = append(p.captureQueue, label)
}

// flushCaptures reads the final texture for every queued label and writes
// each as a PNG file. Called at the end of a successful Render.
func (p *Pipeline) flushCaptures() {
	if len(p.captureQueue) == 0 {
		return
	}
	defer func() { p.captureQueue = p.captureQueue[:0] }()

	log := Logger()
	img, err := ReadTexture(p.pool.FinalTexture())
	if err != nil {
		log.Error("dusk: capture", "err", err)
		return
	}
	if err := os.MkdirAll(p.cfg.CaptureDir, 0o755); err != nil {
		log.Error("dusk: capture", "err", fmt.Errorf("mkdir %s: %w", p.cfg.CaptureDir, err))
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range p.captureQueue {
		path := filepath.Join(p.cfg.CaptureDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			log.Error("dusk: capture", "err", err)
		}
	}
}

// ReadTexture copies tex into a straight-alpha NRGBA image.
func ReadTexture(tex *Texture) (*image.NRGBA, error) {
	if tex.Native() == nil {
		return nil, fmt.Errorf("read texture %s: not allocated", tex.Name())
	}
	w, h := tex.Width(), tex.Height()
	pixels := make([]byte, 4*w*h)
	if err := tex.Native().ReadPixels(pixels); err != nil {
		return nil, deviceErr("read pixels "+tex.Name(), err)
	}

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
