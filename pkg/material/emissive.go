package material

import (
	"math/rand"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Emissive is a light-emitting material that never scatters — every
// incoming ray is absorbed after its emission is collected (spec §4.3).
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive constructs an emissive material, rejecting negative
// emission channels (spec §7). Channels may exceed 1 — this is HDR
// radiance, not a clamped display color.
func NewEmissive(emission core.Vec3) (*Emissive, error) {
	if emission.X < 0 || emission.Y < 0 || emission.Z < 0 {
		return nil, &core.MaterialError{Material: "emissive", Reason: "emission channels must be non-negative"}
	}
	return &Emissive{Emission: emission}, nil
}

// Emit returns the material's intrinsic radiance.
func (e *Emissive) Emit(core.Vec3) core.Vec3 {
	return e.Emission
}

// Scatter always absorbs: emissive surfaces only emit.
func (e *Emissive) Scatter(core.Ray, *core.HitRecord, *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
