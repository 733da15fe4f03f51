package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"github.com/mgraves/go-sphere-tracer/pkg/core"
	"github.com/mgraves/go-sphere-tracer/pkg/scene"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base PRNG seed; a fixed seed renders bit-identically
	Workers         int   // Parallel scanline workers; <=0 means NumCPU, 1 means serial
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 6,
		MaxDepth:        50,
		Seed:            42, // Deterministic for testing
		Workers:         1,
	}
}

// Shadow-acne epsilon: secondary rays start slightly off the surface so they
// cannot re-hit it at t ~ 0.
const tMinEpsilon = 0.001

// skyTop is the zenith color of the background gradient
var skyTop = core.NewColor(0.5, 0.7, 1.0)

// Raytracer renders a scene into a caller-owned RGB8 pixel buffer
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a raytracer for the given scene and image bounds.
// The camera viewport is 2.0 high with the aspect ratio of the bounds and
// a focal length of 1.0.
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	aspectRatio := float64(width) / float64(height)
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	camera := NewCamera(core.NewVec3(0, 0, 0), viewportHeight, viewportWidth, focalLength)

	return &Raytracer{
		scene:  s,
		camera: camera,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// rayColor returns the color gathered along a ray, following scattered rays
// until the depth budget runs out, the ray is absorbed, or it escapes to the sky
func (rt *Raytracer) rayColor(r core.Ray, depth int, rng *rand.Rand) core.Color {
	// Exhausted bounce budget gathers no more light
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := rt.scene.World.ClosestHit(r, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rng)
	if !didScatter {
		return core.Black // Material absorbed the ray
	}

	return scatter.Attenuation.Mul(rt.rayColor(scatter.Scattered, depth-1, rng))
}

// backgroundGradient returns the sky color for a ray that missed everything:
// white at the horizon blending to blue at the zenith
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()
	t := float32(0.5 * (unitDirection.Y + 1.0))
	return core.White.Lerp(skyTop, t)
}

// Render fills pixels with the gamma-corrected RGB8 image, row-major with
// row 0 at the top and channels in R,G,B order. The buffer must hold
// exactly width*height*3 bytes.
func (rt *Raytracer) Render(pixels []byte) {
	if len(pixels) != rt.width*rt.height*3 {
		panic(fmt.Sprintf("renderer: pixel buffer is %d bytes, want %d", len(pixels), rt.width*rt.height*3))
	}

	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers == 1 {
		for y := 0; y < rt.height; y++ {
			rt.renderRow(y, pixels, rt.rowRand(y))
		}
		return
	}

	pool := NewWorkerPool(rt, pixels, workers)
	pool.Start()
	for y := 0; y < rt.height; y++ {
		pool.Submit(RowTask{Row: y, Rng: rt.rowRand(y)})
	}
	pool.Stop()
}

// renderRow renders one scanline into the shared pixel buffer. Rows are
// non-overlapping slices of the buffer, so concurrent calls on distinct
// rows are safe.
func (rt *Raytracer) renderRow(y int, pixels []byte, rng *rand.Rand) {
	for x := 0; x < rt.width; x++ {
		colorAccum := core.Black

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Jittered viewport coordinates; v flips vertically so +Y is
			// up in world space while row 0 is the top of the image
			u := (float64(x) + rng.Float64()) / float64(rt.width-1)
			v := (float64(rt.height) - (float64(y) + rng.Float64())) / float64(rt.height-1)

			ray := rt.camera.GetRay(u, v)
			colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth, rng))
		}

		pixelColor := colorAccum.Scale(1.0 / float32(rt.config.SamplesPerPixel)).Gamma2()

		i := (y*rt.width + x) * 3
		pixels[i], pixels[i+1], pixels[i+2] = pixelColor.RGB8()
	}
}

// rowRand derives a per-scanline PRNG from the base seed, so a fixed seed
// produces the same image for any worker count
func (rt *Raytracer) rowRand(y int) *rand.Rand {
	return rand.New(rand.NewSource(rt.config.Seed + int64(y)*0x9E3779B9))
}
