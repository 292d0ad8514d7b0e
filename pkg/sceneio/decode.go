// Package sceneio decodes a declarative JSON scene description into a
// scene.Scene ready to render — the external collaborator named in spec
// §6.1. The engine itself never imports this package.
package sceneio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
	"github.com/kaelstrom/go-pathtracer/pkg/geometry"
	"github.com/kaelstrom/go-pathtracer/pkg/material"
	"github.com/kaelstrom/go-pathtracer/pkg/renderer"
	"github.com/kaelstrom/go-pathtracer/pkg/scene"
)

type colorDoc [3]int // 8-bit channels, divided by 255 before reaching the engine (spec §6.1)

func (c colorDoc) vec3() core.Vec3 {
	return core.NewVec3(float64(c[0])/255, float64(c[1])/255, float64(c[2])/255)
}

type vecDoc [3]float64

func (v vecDoc) vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type cameraDoc struct {
	Origin         vecDoc  `json:"origin"`
	FocalLength    float64 `json:"focalLength"`
	ViewportHeight float64 `json:"viewportHeight"`
}

type materialDoc struct {
	Type      string   `json:"type"`
	Albedo    colorDoc `json:"albedo,omitempty"`
	Fuzziness float64  `json:"fuzz,omitempty"`
	IOR       float64  `json:"ior,omitempty"`
	Emission  colorDoc `json:"emission,omitempty"`
}

type primitiveDoc struct {
	Type        string  `json:"type"`
	Material    string  `json:"material"`
	Center      vecDoc  `json:"center,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	Point       vecDoc  `json:"point,omitempty"`
	Normal      vecDoc  `json:"normal,omitempty"`
	Q           vecDoc  `json:"q,omitempty"`
	U           vecDoc  `json:"u,omitempty"`
	V           vecDoc  `json:"v,omitempty"`
	HalfExtents vecDoc  `json:"halfExtents,omitempty"`
}

// sceneDoc mirrors the JSON document described in spec §6.1.
type sceneDoc struct {
	Width           int                     `json:"width"`
	AspectRatio     json.RawMessage         `json:"aspectRatio"`
	SamplesPerPixel int                     `json:"samplesPerPixel"`
	MaxDepth        int                     `json:"maxDepth"`
	Background      colorDoc                `json:"background"`
	Camera          cameraDoc               `json:"camera"`
	Materials       map[string]materialDoc  `json:"materials"`
	Primitives      []primitiveDoc          `json:"primitives"`
	Seed            int64                   `json:"seed,omitempty"`
	BlockSize       int                     `json:"blockSize,omitempty"`
	WorkerCount     int                     `json:"workerCount,omitempty"`
}

// Decode parses a JSON scene description and builds the corresponding
// scene.Scene plus the render configuration the document specifies.
func Decode(data []byte) (*scene.Scene, renderer.Config, error) {
	var doc sceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, renderer.Config{}, &DecodeError{Field: "<document>", Reason: fmt.Errorf("%w: %v", ErrMalformedJSON, err)}
	}

	aspectRatio, err := resolveAspectRatio(doc.AspectRatio)
	if err != nil {
		return nil, renderer.Config{}, &DecodeError{Field: "aspectRatio", Reason: err}
	}
	height := int(float64(doc.Width) / aspectRatio)

	materials, err := buildMaterials(doc.Materials)
	if err != nil {
		return nil, renderer.Config{}, err
	}

	primitives, err := buildPrimitives(doc.Primitives, materials)
	if err != nil {
		return nil, renderer.Config{}, err
	}

	camera := renderer.NewCamera(doc.Camera.Origin.vec3(), doc.Camera.FocalLength, doc.Camera.ViewportHeight, aspectRatio)

	built := &scene.Scene{
		Geometry:   geometry.NewScene(primitives...),
		Camera:     camera,
		Background: doc.Background.vec3(),
		Width:      doc.Width,
		Height:     height,
	}

	cfg := renderer.Config{
		SamplesPerPixel: doc.SamplesPerPixel,
		MaxDepth:        doc.MaxDepth,
		BlockSize:       doc.BlockSize,
		WorkerCount:     doc.WorkerCount,
		Seed:            doc.Seed,
	}

	return built, cfg, nil
}

// resolveAspectRatio accepts either a JSON number or an "A/B" string
// (spec §6.1).
func resolveAspectRatio(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: missing", ErrUnresolvableAspectRatio)
	}

	var asFloat float64
	if err := json.Unmarshal(raw, &asFloat); err == nil {
		return asFloat, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnresolvableAspectRatio, raw)
	}

	parts := strings.SplitN(asString, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvableAspectRatio, asString)
	}
	numerator, errN := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	denominator, errD := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errN != nil || errD != nil || denominator == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvableAspectRatio, asString)
	}
	return numerator / denominator, nil
}

func buildMaterials(docs map[string]materialDoc) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(docs))
	for name, m := range docs {
		built, err := buildMaterial(m)
		if err != nil {
			return nil, &DecodeError{Field: "materials." + name, Reason: err}
		}
		materials[name] = built
	}
	return materials, nil
}

func buildMaterial(m materialDoc) (core.Material, error) {
	switch m.Type {
	case "diffuse":
		return material.NewDiffuse(m.Albedo.vec3()), nil
	case "metal":
		return material.NewMetal(m.Albedo.vec3(), m.Fuzziness), nil
	case "dielectric":
		return material.NewDielectric(m.IOR)
	case "emissive":
		return material.NewEmissive(m.Emission.vec3())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterialType, m.Type)
	}
}

func buildPrimitives(docs []primitiveDoc, materials map[string]core.Material) ([]core.Shape, error) {
	primitives := make([]core.Shape, 0, len(docs))
	for i, p := range docs {
		mat, ok := materials[p.Material]
		if !ok {
			return nil, &DecodeError{Field: fmt.Sprintf("primitives[%d].material", i), Reason: fmt.Errorf("%w: %q", ErrDanglingReference, p.Material)}
		}

		var shape core.Shape
		var err error
		switch p.Type {
		case "sphere":
			shape, err = geometry.NewSphere(p.Center.vec3(), p.Radius, mat)
		case "plane":
			shape, err = geometry.NewPlane(p.Point.vec3(), p.Normal.vec3(), mat)
		case "parallelogram":
			shape, err = geometry.NewParallelogram(p.Q.vec3(), p.U.vec3(), p.V.vec3(), mat)
		case "parallelepiped":
			halfExtents := p.HalfExtents.vec3()
			q := p.Center.vec3().Subtract(halfExtents)
			u := core.NewVec3(2*halfExtents.X, 0, 0)
			v := core.NewVec3(0, 2*halfExtents.Y, 0)
			w := core.NewVec3(0, 0, 2*halfExtents.Z)
			shape, err = geometry.NewParallelepiped(q, u, v, w, mat)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownPrimitiveType, p.Type)
		}
		if err != nil {
			return nil, &DecodeError{Field: fmt.Sprintf("primitives[%d]", i), Reason: err}
		}
		primitives = append(primitives, shape)
	}
	return primitives, nil
}
