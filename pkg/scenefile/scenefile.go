// Package scenefile loads a YAML scene description and compiles it
// into a scene.Scene and a camera.Camera. Grounded on
// github.com/galvanized/gazed-vu's load/shd.go: a plain yaml-tagged
// config struct unmarshalled with gopkg.in/yaml.v3, then converted
// field by field into domain types through string-keyed lookup maps
// that reject unknown names with a named error instead of panicking.
package scenefile

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/kestrel-render/lumen/pkg/camera"
	"github.com/kestrel-render/lumen/pkg/geometry"
	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/object"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

type vec3Config struct {
	X, Y, Z float64
}

type transformConfig struct {
	Translate vec3Config `yaml:"translate"`
	Rotate    vec3Config `yaml:"rotate"` // Euler angles in degrees
	Scale     float64    `yaml:"scale"`
}

func (t transformConfig) toSimilarity() vecmath.Similarity {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return vecmath.Similarity{
		Translation: vecmath.NewVec3(t.Translate.X, t.Translate.Y, t.Translate.Z),
		Rotation: vecmath.NewVec3(
			t.Rotate.X*math.Pi/180,
			t.Rotate.Y*math.Pi/180,
			t.Rotate.Z*math.Pi/180,
		),
		Scale: scale,
	}
}

type shapeConfig struct {
	Kind   string  `yaml:"kind"` // sphere | plane | cuboid | cylinder
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Invert bool    `yaml:"invert"`
}

func buildShape(cfg shapeConfig) (geometry.Shape, error) {
	var shape geometry.Shape
	switch cfg.Kind {
	case "sphere":
		shape = &geometry.Sphere{Radius: orOne(cfg.Radius)}
	case "plane":
		shape = &geometry.Plane{Width: orOne(cfg.Width), Height: orOne(cfg.Height)}
	case "cuboid":
		shape = &geometry.Cuboid{Width: orOne(cfg.Width), Height: orOne(cfg.Height), Depth: orOne(cfg.Depth)}
	case "cylinder":
		shape = &geometry.Cylinder{Radius: orOne(cfg.Radius), Height: orOne(cfg.Height)}
	default:
		return nil, fmt.Errorf("scenefile: unsupported shape kind %q", cfg.Kind)
	}
	if cfg.Invert {
		shape = &geometry.Inverted{Inner: shape}
	}
	return shape, nil
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

type colorConfig struct {
	Solid   *vec3Config `yaml:"solid"`
	Checker *struct {
		ColorA vec3Config `yaml:"colorA"`
		ColorB vec3Config `yaml:"colorB"`
		Scale  float64    `yaml:"scale"`
	} `yaml:"checker"`
}

func buildColorSource(cfg colorConfig) (material.ColorSource, error) {
	switch {
	case cfg.Solid != nil:
		return material.NewSolidColor(vecmath.NewVec3(cfg.Solid.X, cfg.Solid.Y, cfg.Solid.Z)), nil
	case cfg.Checker != nil:
		scale := cfg.Checker.Scale
		if scale == 0 {
			scale = 1
		}
		return material.NewCheckerboard(
			vecmath.NewVec3(cfg.Checker.ColorA.X, cfg.Checker.ColorA.Y, cfg.Checker.ColorA.Z),
			vecmath.NewVec3(cfg.Checker.ColorB.X, cfg.Checker.ColorB.Y, cfg.Checker.ColorB.Z),
			scale,
		), nil
	default:
		return nil, fmt.Errorf("scenefile: material has neither solid nor checker color")
	}
}

type materialConfig struct {
	Kind         string      `yaml:"kind"` // emissive | reflective
	Radiance     vec3Config  `yaml:"radiance"`
	Color        colorConfig `yaml:"color"`
	Roughness    float64     `yaml:"roughness"`
	Transmission float64     `yaml:"transmission"`
	IOR          float64     `yaml:"ior"`
}

func buildMaterial(cfg materialConfig) (*material.Material, error) {
	switch cfg.Kind {
	case "emissive":
		return material.NewEmissive(vecmath.NewVec3(cfg.Radiance.X, cfg.Radiance.Y, cfg.Radiance.Z)), nil
	case "reflective":
		color, err := buildColorSource(cfg.Color)
		if err != nil {
			return nil, err
		}
		ior := cfg.IOR
		if ior < 0 {
			return nil, fmt.Errorf("scenefile: negative index of refraction %g", ior)
		}
		if ior == 0 {
			ior = 1.5
		}
		return material.NewReflective(color, cfg.Roughness, cfg.Transmission, ior), nil
	default:
		return nil, fmt.Errorf("scenefile: unsupported material kind %q", cfg.Kind)
	}
}

type objectConfig struct {
	Shape     shapeConfig     `yaml:"shape"`
	Transform transformConfig `yaml:"transform"`
	Material  materialConfig  `yaml:"material"`
}

type apertureConfig struct {
	Kind   string  `yaml:"kind"` // pinhole | gaussian | polygon
	StdDev float64 `yaml:"stdDev"`
	Radius float64 `yaml:"radius"`
	Sides  int     `yaml:"sides"`
}

func buildAperture(cfg apertureConfig) (camera.Aperture, error) {
	switch cfg.Kind {
	case "", "pinhole":
		return camera.PinholeAperture{}, nil
	case "gaussian":
		return camera.NewGaussianAperture(cfg.StdDev), nil
	case "polygon":
		sides := cfg.Sides
		if sides < 3 {
			sides = 6
		}
		return camera.NewRegularPolygonAperture(cfg.Radius, sides), nil
	default:
		return nil, fmt.Errorf("scenefile: unsupported aperture kind %q", cfg.Kind)
	}
}

type cameraConfig struct {
	Width       int             `yaml:"width"`
	Height      int             `yaml:"height"`
	FovDegrees  float64         `yaml:"fov"`
	ZNear       float64         `yaml:"zNear"`
	ZFar        float64         `yaml:"zFar"`
	FocalLength float64         `yaml:"focalLength"`
	Aperture    apertureConfig  `yaml:"aperture"`
	Transform   transformConfig `yaml:"transform"`
}

func buildCamera(cfg cameraConfig) (*camera.Camera, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scenefile: camera width/height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	aperture, err := buildAperture(cfg.Aperture)
	if err != nil {
		return nil, err
	}

	fov := cfg.FovDegrees
	if fov == 0 {
		fov = 60
	}
	zNear := cfg.ZNear
	if zNear == 0 {
		zNear = 0.1
	}
	zFar := cfg.ZFar
	if zFar == 0 {
		zFar = 1000
	}
	focalLength := cfg.FocalLength
	if focalLength == 0 {
		focalLength = 10
	}

	return camera.New(cfg.Width, cfg.Height, fov, zNear, zFar, aperture, focalLength, cfg.Transform.toSimilarity()), nil
}

// Document is the top-level YAML scene description shape.
type Document struct {
	Camera  cameraConfig   `yaml:"camera"`
	Objects []objectConfig `yaml:"objects"`
}

// Parse unmarshals and compiles a YAML scene description into a
// scene.Scene and camera.Camera. Every failure mode — an unknown shape
// tag, an unknown material kind, a non-positive resolution, a
// zero-area emitter — is returned as an error rather than panicking,
// so a malformed scene file is rejected before any rendering starts.
// An object list with no emissive objects at all is not rejected here:
// whether that is an error depends on which integrator ends up
// rendering the scene, a choice Parse has no visibility into.
func Parse(data []byte) (*scene.Scene, *camera.Camera, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("scenefile: yaml: %w", err)
	}

	objects := make([]*object.Object, 0, len(doc.Objects))
	for i, oc := range doc.Objects {
		shape, err := buildShape(oc.Shape)
		if err != nil {
			return nil, nil, fmt.Errorf("scenefile: object %d: %w", i, err)
		}
		mat, err := buildMaterial(oc.Material)
		if err != nil {
			return nil, nil, fmt.Errorf("scenefile: object %d: %w", i, err)
		}
		objects = append(objects, object.New(shape, oc.Transform.toSimilarity(), mat))
	}

	s, err := scene.New(objects)
	if err != nil {
		return nil, nil, err
	}

	cam, err := buildCamera(doc.Camera)
	if err != nil {
		return nil, nil, err
	}

	return s, cam, nil
}
