package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a scene from build options
type Builder func(opts BuildOptions) *Scene

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used on the command line
	DisplayName string `json:"displayName"` // Display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

type registeredScene struct {
	info    SceneInfo
	builder Builder
}

// Registry maps scene names to builders
type Registry struct {
	scenes map[string]registeredScene
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[string]registeredScene)}
}

// Register adds a builder under info.ID. A blank display name is derived from the ID.
func (r *Registry) Register(info SceneInfo, builder Builder) {
	if info.DisplayName == "" {
		info.DisplayName = titleCase(info.ID)
	}
	r.scenes[info.ID] = registeredScene{info: info, builder: builder}
}

// Build constructs the named scene
func (r *Registry) Build(name string, opts BuildOptions) (*Scene, error) {
	entry, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return entry.builder(opts), nil
}

// Names returns the registered scene IDs in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Groups returns the registered scenes grouped by category, groups and scenes sorted by name
func (r *Registry) Groups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, name := range r.Names() {
		info := r.scenes[name].info
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	groupNames := make([]string, 0, len(groupMap))
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// DefaultRegistry returns a registry holding every built-in scene
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(SceneInfo{
		ID:          "random-spheres",
		Description: "Hundreds of small random spheres around three large ones",
		Group:       "Spheres",
	}, NewRandomSpheresScene)
	r.Register(SceneInfo{
		ID:          "glass-sphere",
		Description: "A single glass sphere above the ground",
		Group:       "Spheres",
	}, NewGlassSphereScene)
	r.Register(SceneInfo{
		ID:          "cube",
		Description: "A single diffuse cube",
		Group:       "Cubes",
	}, NewCubeScene)
	r.Register(SceneInfo{
		ID:          "random-cubes",
		Description: "Small rotated cubes with random materials",
		Group:       "Cubes",
	}, NewRandomCubesScene)
	r.Register(SceneInfo{
		ID:          "torus",
		Description: "A ray-marched metal torus around a sphere",
		Group:       "Implicit Surfaces",
	}, NewTorusScene)
	r.Register(SceneInfo{
		ID:          "sunset",
		Description: "Directional sun and point light with Blinn-Phong highlights",
		Group:       "Lighting",
	}, NewSunsetScene)
	return r
}

// titleCase converts a hyphenated identifier to title case
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
