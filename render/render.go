package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

type bandFunc func(pixels []byte, bounds mandelbrot.Bounds, viewport mandelbrot.Viewport, maxIterations int, inSetShade uint8)

type Renderer struct {
	logger     bslogger.Logger
	renderBand bandFunc
	settings   mandelbrot.Settings
}

func NewRenderer(settings mandelbrot.Settings) Renderer {
	renderer := Renderer{
		logger:     bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		renderBand: RenderBand,
	}
	misc.CheckError(settings.Verify(), renderer.logger, misc.Fatal)
	renderer.settings = settings
	return renderer
}

// RenderBand fills pixels with the escape time shade of every point in the
// band. The bounds and viewport describe the band itself, not the full
// image; the caller has already derived the band's corners. A pixel slice
// that does not match the bounds is a programming error and panics.
func RenderBand(pixels []byte, bounds mandelbrot.Bounds, viewport mandelbrot.Viewport, maxIterations int, inSetShade uint8) {
	if len(pixels) != bounds.PixelCount() {
		panic(fmt.Sprintf("pixel slice has %d bytes, band bounds %s need %d", len(pixels), bounds.String(), bounds.PixelCount()))
	}

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := mandelbrot.PixelToPoint(bounds, mandelbrot.Pixel{Column: column, Row: row}, viewport)
			shade := inSetShade
			if iteration, escaped := mandelbrot.EscapeTime(point, maxIterations); escaped {
				shade = uint8(iteration)
			}
			pixels[row*bounds.Width+column] = shade
		}
	}
}

// Render computes the full image, spreading bands of rows across the
// configured number of workers. Each worker exclusively owns its band's
// slice of the buffer until it finishes, so the workers share no mutable
// state and the buffer is complete once every worker has joined. A panic in
// any band fails the whole render; there is no partial result.
func (r *Renderer) Render() ([]byte, error) {
	bounds := r.settings.Bounds()
	viewport := r.settings.Viewport()
	pixels := make([]byte, bounds.PixelCount())

	bands := Partition(bounds.Height, r.settings.WorkerCount)
	r.logger.Debugf("Rendering %d rows in %d bands across %d workers", bounds.Height, len(bands), r.settings.WorkerCount)

	var wg sync.WaitGroup
	failures := make(chan error, len(bands))
	startTime := time.Now()

	for _, band := range bands {
		band := band

		top := band.StartRow
		bandBounds := mandelbrot.Bounds{Width: bounds.Width, Height: band.RowCount}
		bandPixels := pixels[top*bounds.Width : (top+band.RowCount)*bounds.Width]
		bandViewport := mandelbrot.Viewport{
			UpperLeft:  mandelbrot.PixelToPoint(bounds, mandelbrot.Pixel{Column: 0, Row: top}, viewport),
			LowerRight: mandelbrot.PixelToPoint(bounds, mandelbrot.Pixel{Column: bounds.Width, Row: top + band.RowCount}, viewport),
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if value := recover(); value != nil {
					failures <- fmt.Errorf("band %s failed: %v", band.String(), value)
				}
			}()
			r.renderBand(bandPixels, bandBounds, bandViewport, r.settings.MaxIterations, r.settings.InSetShade)
		}()
	}

	wg.Wait()
	close(failures)
	if err := <-failures; err != nil {
		return nil, err
	}

	r.logger.Debugf("Rendered %d pixels in %s", bounds.PixelCount(), time.Since(startTime))
	return pixels, nil
}
