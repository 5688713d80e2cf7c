package automation

import (
	"os"
	"path/filepath"
	"testing"
)

const scenarioYAML = `
name: two-step
description: a two-step sweep for testing
steps:
  - label: baseline
    particle_datasheet: ../../testdata/particles.dat
    decays_datasheet: ../../testdata/decays.dat
    tau0: 0.1
    dtau: 0.01
    tauf: 0.12
    t0: 0.12
    temperature:
      model: constant
    track: [1, 2]
  - label: hotter
    particle_datasheet: ../../testdata/particles.dat
    decays_datasheet: ../../testdata/decays.dat
    tau0: 0.1
    dtau: 0.01
    tauf: 0.12
    t0: 0.3
    temperature:
      model: constant
    track: [1, 2]
`

func TestLoadScenarioParsesSteps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if scenario.Name != "two-step" || len(scenario.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", scenario)
	}
	if scenario.Steps[1].T0 != 0.3 {
		t.Errorf("Steps[1].T0 = %v, want 0.3", scenario.Steps[1].T0)
	}
}

func TestRunExecutesEveryStepInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}

	results, err := Run(scenario)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Step.Label != "baseline" || results[1].Step.Label != "hotter" {
		t.Errorf("steps out of order: %q, %q", results[0].Step.Label, results[1].Step.Label)
	}
	for _, r := range results {
		if len(r.Samples) == 0 {
			t.Errorf("step %q produced no samples", r.Step.Label)
		}
	}
}

func TestRunAbortsOnMissingCatalog(t *testing.T) {
	scenario := &Scenario{
		Name: "broken",
		Steps: []Step{
			{Label: "bad", ParticleDatasheet: "does-not-exist.dat", DecaysDatasheet: "does-not-exist.dat"},
		},
	}
	_, err := Run(scenario)
	if err == nil {
		t.Fatal("expected an error for a missing catalog file")
	}
}
