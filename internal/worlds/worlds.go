// Package worlds provides the world preset catalog and configuration
// loading with schema validation.
package worlds

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/talgya/lifeform/internal/environment"
)

//go:embed presets.yaml
var presetsYAML []byte

//go:embed schema.json
var schemaJSON []byte

// World is a named environment-factor preset. Key is the catalog lookup
// name; Factors is copied into the simulation that runs it.
type World struct {
	Key     string
	Factors environment.Factors
}

// InvalidWorldConfigError reports a world configuration that is not a valid
// factor mapping.
type InvalidWorldConfigError struct {
	Name   string
	Reason string
}

func (e *InvalidWorldConfigError) Error() string {
	return fmt.Sprintf("invalid world config %q: %s", e.Name, e.Reason)
}

var (
	presets map[string]map[string]any
	schema  *jsonschema.Schema
)

func init() {
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		panic(fmt.Sprintf("worlds: embedded presets are malformed: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("world.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("worlds: embedded schema: %v", err))
	}
	s, err := c.Compile("world.schema.json")
	if err != nil {
		panic(fmt.Sprintf("worlds: embedded schema does not compile: %v", err))
	}
	schema = s

	addMutantWorlds()
}

// addMutantWorlds derives the mutant presets by overlaying extreme mutation
// pressure on existing worlds.
func addMutantWorlds() {
	presets["mutant_garden_world"] = evolve("garden_world", map[string]any{
		"name":                       "Mutant Garden World",
		"description":                "The garden paradise under runaway mutation pressure.",
		"mutation_rate":              0.5,
		"mutation_strength":          0.1,
		"event_chance":               0.05,
		"disaster_chance":            0.02,
		"disaster_impact":            0.1,
		"resource_availability":      1.33,
		"resource_regeneration_rate": 0.6,
		"carrying_capacity":          3333,
		"growth_rate":                1.33,
		"death_rate":                 1.0,
		"competition_intensity":      0.4,
	})
	presets["mutant_chaotic_world"] = evolve("chaotic_world", map[string]any{
		"name":                       "Mutant Chaotic World",
		"description":                "Even more extreme chaos, mutation, and scarcity.",
		"mutation_rate":              0.7,
		"mutation_strength":          0.2,
		"event_chance":               0.2,
		"disaster_chance":            0.15,
		"disaster_impact":            0.5,
		"resource_availability":      0.7,
		"resource_regeneration_rate": 0.3,
		"carrying_capacity":          400,
		"growth_rate":                0.9,
		"death_rate":                 1.25,
		"competition_intensity":      0.9,
	})
}

func evolve(base string, changes map[string]any) map[string]any {
	world := make(map[string]any, len(presets[base])+len(changes))
	for k, v := range presets[base] {
		world[k] = v
	}
	for k, v := range changes {
		world[k] = v
	}
	return world
}

// List returns all available preset keys, sorted.
func List() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the display name and description of a preset.
func Describe(key string) (name, description string, err error) {
	raw, ok := presets[key]
	if !ok {
		return "", "", fmt.Errorf("unknown world preset: %s", key)
	}
	name, _ = raw["name"].(string)
	description, _ = raw["description"].(string)
	return name, description, nil
}

// Load returns a validated copy of the named preset. Unknown names fall
// back to the default world, matching the original catalog behavior.
func Load(key string) (*World, error) {
	raw, ok := presets[key]
	if !ok {
		key = "default"
		raw = presets[key]
	}
	return build(key, raw)
}

// LoadFile reads a world configuration from an external YAML file. The file
// must hold a single factor mapping.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidWorldConfigError{Name: path, Reason: err.Error()}
	}
	return build(path, raw)
}

// build validates a raw factor mapping against the schema and decodes it
// into typed factors.
func build(key string, raw map[string]any) (*World, error) {
	// The schema validator expects JSON-decoded values, so round-trip the
	// YAML mapping through encoding/json first.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, &InvalidWorldConfigError{Name: key, Reason: err.Error()}
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, &InvalidWorldConfigError{Name: key, Reason: err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &InvalidWorldConfigError{Name: key, Reason: err.Error()}
	}

	// Re-encode through YAML to map the snake_case keys onto the struct tags.
	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return nil, &InvalidWorldConfigError{Name: key, Reason: err.Error()}
	}
	var factors environment.Factors
	if err := yaml.Unmarshal(encoded, &factors); err != nil {
		return nil, &InvalidWorldConfigError{Name: key, Reason: err.Error()}
	}

	if factors.MemoryWindow <= 0 {
		factors.MemoryWindow = environment.DefaultMemoryWindow
	}
	if factors.MemorySensitivity == 0 {
		factors.MemorySensitivity = 1.0
	}

	return &World{Key: key, Factors: factors}, nil
}
