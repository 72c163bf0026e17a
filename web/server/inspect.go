package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	UV           [2]float64             `json:"uv"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the first surface hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *core.HitRecord
	Object    core.Hittable // Top-level object that produced the hit, if found
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// describeColorSource reports a texture for display
func describeColorSource(source material.ColorSource) map[string]interface{} {
	switch src := source.(type) {
	case *material.SolidColor:
		return map[string]interface{}{
			"type":  "solid",
			"color": hexColor(src.Color),
			"rgb":   vecArray(src.Color),
		}
	case *material.CheckerTexture:
		return map[string]interface{}{
			"type":      "checker",
			"even":      describeColorSource(src.Even),
			"odd":       describeColorSource(src.Odd),
			"frequency": src.Frequency,
		}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat core.Material, hit *core.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = describeColorSource(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff"
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emit"] = describeColorSource(m.Emit)
		properties["emission"] = vecArray(m.Emitted(hit.UV, hit.Point))
		return "diffuse_light", properties

	case *material.Isotropic:
		properties["albedo"] = describeColorSource(m.Albedo)
		return "isotropic", properties

	default:
		if _, ok := mat.(core.Emitter); ok {
			properties["emission"] = vecArray(core.Emitted(mat, hit.UV, hit.Point))
			return "emissive", properties
		}
		return "unknown", properties
	}
}

// describeBoundingBox reports the box an object occupies over the shutter interval
func describeBoundingBox(object core.Hittable, time0, time1 float64) (map[string]interface{}, bool) {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		return nil, false
	}
	return map[string]interface{}{
		"min":    vecArray(box.Min),
		"max":    vecArray(box.Max),
		"center": vecArray(box.Center()),
		"size":   vecArray(box.Size()),
	}, true
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(object core.Hittable, time0, time1 float64) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if object == nil {
		return "unknown", properties
	}
	if box, ok := describeBoundingBox(object, time0, time1); ok {
		properties["boundingBox"] = box
	}

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["hollow"] = geom.Radius < 0
		return "sphere", properties

	case *geometry.MovingSphere:
		properties["center0"] = vecArray(geom.Center0)
		properties["center1"] = vecArray(geom.Center1)
		properties["time0"] = geom.Time0
		properties["time1"] = geom.Time1
		properties["radius"] = geom.Radius
		return "moving_sphere", properties

	case *geometry.ConstantMedium:
		properties["density"] = geom.Density
		boundaryType, boundaryProps := extractGeometryInfo(geom.Boundary, time0, time1)
		properties["boundary"] = map[string]interface{}{
			"type":       boundaryType,
			"properties": boundaryProps,
		}
		return "constant_medium", properties

	case *geometry.HittableList:
		properties["objects"] = geom.Len()
		return "list", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of the given pixel and returns
// the first object hit along with the top-level object it belongs to. Pixel (0,0) is the top-left corner of the image.
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	// Fixed seed so the lens and shutter samples repeat between calls
	sampler := core.NewSeededSampler(0)
	s := (float64(pixelX) + 0.5) / float64(width)
	t := (float64(height-1-pixelY) + 0.5) / float64(height)
	ray := sceneObj.Camera.GetRay(s, t, sampler)

	hit, object, isHit := sceneObj.World.HitObject(ray, 0.001, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}
	return InspectResult{Hit: true, HitRecord: hit, Object: object}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := scene.New(req.Scene, req.Seed)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cameraConfig := sceneObj.CameraConfig
	cameraConfig.Width = req.Width
	width, height := cameraConfig.Width, cameraConfig.Height()

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, width, height, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	hit := result.HitRecord
	materialType, materialProps := extractMaterialInfo(hit.Material, hit)
	geometryType, geometryProps := extractGeometryInfo(result.Object, cameraConfig.Time0, cameraConfig.Time1)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		UV:           [2]float64{hit.UV.X, hit.UV.Y},
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
