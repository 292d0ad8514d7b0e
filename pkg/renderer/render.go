package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Scene is the narrow contract the renderer needs from a scene aggregate —
// satisfied by *geometry.Scene without importing it, avoiding a cycle.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
}

// blockSeedMultiplier spreads adjacent block indices into distinct regions
// of the seed space. It's computed in uint64 arithmetic and folded into an
// int64 seed below, since the constant itself overflows int64.
const blockSeedMultiplier uint64 = 0x9E3779B97F4A7C15

// Config holds the caller-supplied rendering parameters (spec §6.3).
type Config struct {
	SamplesPerPixel int
	MaxDepth        int
	BlockSize       int // rows per scheduling tile; DefaultBlockSize if zero
	WorkerCount     int // parallel workers; runtime.NumCPU() if zero
	Seed            int64
}

// resolved fills in zero-valued fields with their defaults.
func (c Config) resolved() Config {
	if c.BlockSize <= 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = runtime.NumCPU()
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 50
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = 1
	}
	return c
}

// RayColorFunc evaluates the radiance along a camera ray. The renderer
// takes this as a parameter rather than importing the integrator package,
// which otherwise would import renderer's Scene-shaped dependents — the
// caller supplies integrator.RayColor bound to its own scene and background.
type RayColorFunc func(ray core.Ray, rng *rand.Rand) core.Vec3

// Render drives the block-interleaved tile scheduler: it partitions the
// framebuffer's rows into blocks, spawns cfg.WorkerCount workers that each
// process their round-robin block assignment, and waits for completion
// (spec §4.7, §5). Render returns only after every worker has finished, so
// the returned *Progress already holds the final row count; callers have
// no handle on it while the render is running.
func Render(camera *Camera, width, height int, cfg Config, rayColor RayColorFunc) (*Framebuffer, *Progress) {
	cfg = cfg.resolved()
	fb := NewFramebuffer(width, height)
	progress := &Progress{total: int64(height)}

	totalBlocks := blockCount(height, cfg.BlockSize)

	var wg sync.WaitGroup
	for worker := 0; worker < cfg.WorkerCount; worker++ {
		blocks := workerBlocks(worker, cfg.WorkerCount, totalBlocks)
		if len(blocks) == 0 {
			continue
		}
		wg.Add(1)
		go func(blocks []int) {
			defer wg.Done()
			renderBlocks(camera, fb, blocks, cfg, rayColor, progress)
		}(blocks)
	}
	wg.Wait()

	return fb, progress
}

// renderBlocks renders every row of every assigned block, seeding a fresh
// RNG stream per block (not per worker) so a block's sample sequence is a
// pure function of its own index rather than of how many workers happen to
// be running — this is what makes render output independent of worker
// count (spec §8 Parallelism property).
func renderBlocks(camera *Camera, fb *Framebuffer, blocks []int, cfg Config, rayColor RayColorFunc, progress *Progress) {
	height := fb.Height
	width := fb.Width

	for _, block := range blocks {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(uint64(block)*blockSeedMultiplier)))
		topRow, bottomRow := blockBounds(block, height, cfg.BlockSize)

		for row := topRow; row < bottomRow; row++ {
			j := height - 1 - row
			for i := 0; i < width; i++ {
				fb.Set(i, j, samplePixel(camera, i, j, width, height, cfg, rayColor, rng))
			}
			progress.incrementRow()
		}
	}
}

// samplePixel takes cfg.SamplesPerPixel jittered camera-ray samples for
// pixel (i, j) and averages them (spec §4.5).
func samplePixel(camera *Camera, i, j, width, height int, cfg Config, rayColor RayColorFunc, rng *rand.Rand) core.Vec3 {
	accum := core.Vec3{}
	for s := 0; s < cfg.SamplesPerPixel; s++ {
		u := (float64(i) + rng.Float64()) / float64(width-1)
		v := (float64(j) + rng.Float64()) / float64(height-1)
		ray := camera.RayAt(u, v)
		accum = accum.Add(rayColor(ray, rng))
	}
	return accum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
}

// Progress is a shared, atomically incremented row counter (spec §3, §4.7).
type Progress struct {
	done  int64
	total int64
}

func (p *Progress) incrementRow() {
	atomic.AddInt64(&p.done, 1)
}

// RowsDone returns the number of rows completed so far, eventually
// consistent with relaxed ordering — suitable for UI polling, not for
// synchronization.
func (p *Progress) RowsDone() int64 {
	return atomic.LoadInt64(&p.done)
}

// TotalRows returns the image height.
func (p *Progress) TotalRows() int64 {
	return p.total
}
