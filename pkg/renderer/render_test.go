package renderer

import (
	"math/rand"
	"testing"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// constantColor is a RayColorFunc stand-in that ignores the ray and returns
// a color made of three rng draws, so its output is fixed by the rng stream
// alone, letting tests assert on exact framebuffer bytes without importing
// scene or material packages.
func constantColor(ray core.Ray, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
}

func TestRender_ProducesFullyWrittenFramebuffer(t *testing.T) {
	const width, height = 17, 13
	camera := NewCamera(core.NewVec3(0, 0, 0), 1.0, 2.0, float64(width)/float64(height))
	cfg := Config{SamplesPerPixel: 1, MaxDepth: 1, BlockSize: 4, WorkerCount: 5, Seed: 1}

	fb, progress := Render(camera, width, height, cfg, constantColor)

	if int(progress.RowsDone()) != height {
		t.Errorf("RowsDone = %d, want %d", progress.RowsDone(), height)
	}
	if len(fb.Pixels) != width*height*3 {
		t.Fatalf("len(Pixels) = %d, want %d", len(fb.Pixels), width*height*3)
	}
}

func TestRender_SameSeedSameWorkerCount_Deterministic(t *testing.T) {
	const width, height = 20, 20
	camera := NewCamera(core.NewVec3(0, 0, 0), 1.0, 2.0, 1.0)
	cfg := Config{SamplesPerPixel: 4, MaxDepth: 3, BlockSize: 4, WorkerCount: 4, Seed: 42}

	fb1, _ := Render(camera, width, height, cfg, constantColor)
	fb2, _ := Render(camera, width, height, cfg, constantColor)

	if string(fb1.Pixels) != string(fb2.Pixels) {
		t.Error("two renders with identical seed and worker count produced different framebuffers")
	}
}

func TestRender_WorkerCountIndependent(t *testing.T) {
	const width, height = 24, 24
	camera := NewCamera(core.NewVec3(0, 0, 0), 1.0, 2.0, 1.0)

	base := Config{SamplesPerPixel: 4, MaxDepth: 3, BlockSize: 4, Seed: 7}

	cfg1 := base
	cfg1.WorkerCount = 1
	fb1, _ := Render(camera, width, height, cfg1, constantColor)

	cfg8 := base
	cfg8.WorkerCount = 8
	fb8, _ := Render(camera, width, height, cfg8, constantColor)

	if string(fb1.Pixels) != string(fb8.Pixels) {
		t.Error("rendering at T=1 and T=8 with the same seed produced different framebuffers")
	}
}
