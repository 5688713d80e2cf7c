// Package automation runs a YAML-defined batch of scenario steps —
// independent catalog/temperature/window configurations executed in
// sequence.
//
// Each step is still a single-threaded run through [driver.Run]; a
// network's RK4 sweep is never parallelized. Automation only sequences
// several such runs, it never runs two steps concurrently against the
// same network.
package automation

import (
	"fmt"
	"os"

	"github.com/san-kum/reactionnet/internal/catalog"
	"github.com/san-kum/reactionnet/internal/config"
	"github.com/san-kum/reactionnet/internal/driver"
	"gopkg.in/yaml.v3"
)

// Scenario is a named, described batch of run steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scripted run within a Scenario: a catalog, an integration
// window, a temperature model, and the species to record.
type Step struct {
	Label             string                   `yaml:"label"`
	ParticleDatasheet string                   `yaml:"particle_datasheet"`
	DecaysDatasheet   string                   `yaml:"decays_datasheet"`
	Tau0              float64                  `yaml:"tau0"`
	Dtau              float64                  `yaml:"dtau"`
	Tauf              float64                  `yaml:"tauf"`
	T0                float64                  `yaml:"t0"`
	Temperature       config.TemperatureConfig `yaml:"temperature"`
	Track             []int64                  `yaml:"track"`
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// StepResult is one executed Step's output.
type StepResult struct {
	Step    Step
	Samples []driver.Sample
}

// Run executes every step of the scenario in order, loading a fresh
// catalog for each (catalogs are not shared across steps, since steps may
// name different catalog files). A step's error aborts the remaining
// steps rather than silently skipping them.
func Run(scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for _, step := range scenario.Steps {
		net, err := catalog.Load(step.ParticleDatasheet, step.DecaysDatasheet)
		if err != nil {
			return results, fmt.Errorf("scenario %q step %q: %w", scenario.Name, step.Label, err)
		}

		cfg := config.Config{Tau0: step.Tau0, T0: step.T0, Temperature: step.Temperature}
		model, err := cfg.BuildTemperatureModel()
		if err != nil {
			return results, fmt.Errorf("scenario %q step %q: %w", scenario.Name, step.Label, err)
		}

		samples := driver.Run(net, model, step.Tau0, step.Dtau, step.Tauf, step.Track)
		results = append(results, StepResult{Step: step, Samples: samples})
	}

	return results, nil
}
