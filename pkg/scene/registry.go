package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type sceneEntry struct {
	description string
	build       func(seed int64) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		description: "Diffuse, metal and glass spheres including a hollow glass shell",
		build:       func(int64) *Scene { return NewDefaultScene() },
	},
	"random": {
		description: "Field of random spheres with motion-blurred diffuse balls",
		build:       NewRandomSpheresScene,
	},
	"checker": {
		description: "Two checker-textured spheres",
		build:       func(int64) *Scene { return NewCheckerScene() },
	},
	"light": {
		description: "Emissive spheres on a black background",
		build:       func(int64) *Scene { return NewLightScene() },
	},
	"smoke": {
		description: "Constant density media with isotropic scattering",
		build:       NewSmokeScene,
	},
	"spheregrid": {
		description: "Grid of colored fuzzy metal spheres",
		build:       func(int64) *Scene { return NewSphereGridScene() },
	},
}

// New builds the named built-in scene. seed drives any random layout or media.
func New(name string, seed int64) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return entry.build(seed), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every built-in scene, sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		infos = append(infos, SceneInfo{Name: name, Description: builtinScenes[name].description})
	}
	return infos
}
