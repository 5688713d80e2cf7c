package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/reactionnet/internal/catalog"
	"github.com/san-kum/reactionnet/internal/config"
	"github.com/san-kum/reactionnet/internal/driver"
	"github.com/san-kum/reactionnet/internal/store"
	"github.com/san-kum/reactionnet/internal/tui"
)

var (
	particleDatasheet string
	decaysDatasheet   string
	tau0              float64
	t0                float64
	dtau              float64
	tauf              float64
	temperatureModel  string
	track             []int64
	configFile        string
	dataDir           string
	plot              bool
)

// main is the entry point for the reactionnet CLI; it registers
// commands and flags, launches the interactive TUI when no subcommand is
// given, and exits with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "reactionnet",
		Short: "hadron rate-equation network integrator",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfigOrDefault()
			if err := tui.RunInteractive(cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".reactionnet", "run output directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the integrator over a catalog and temperature trajectory",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&particleDatasheet, "particles", "", "particle datasheet path")
	runCmd.Flags().StringVar(&decaysDatasheet, "decays", "", "decays datasheet path")
	runCmd.Flags().Float64Var(&tau0, "tau0", config.DefaultTau0, "initial proper time (fm/c)")
	runCmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "initial temperature (GeV)")
	runCmd.Flags().Float64Var(&dtau, "dtau", 0, "time step (fm/c); defaults to the config's dtau (default tau0/20), or tau0/20 when that is 0")
	runCmd.Flags().Float64Var(&tauf, "tauf", config.DefaultTauf, "final proper time (fm/c)")
	runCmd.Flags().StringVar(&temperatureModel, "temperature", config.DefaultTemperatureModel, "temperature model: constant|ideal_hydro|power_law")
	runCmd.Flags().Int64SliceVar(&track, "track", nil, "PIDs to track (defaults to all)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "render an ASCII plot of the first tracked PID")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "print catalog statistics",
		RunE:  inspectCatalog,
	}
	inspectCmd.Flags().StringVar(&particleDatasheet, "particles", "", "particle datasheet path")
	inspectCmd.Flags().StringVar(&decaysDatasheet, "decays", "", "decays datasheet path")

	rootCmd.AddCommand(runCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfigOrDefault() *config.Config {
	if configFile != "" {
		if cfg, err := config.Load(configFile); err == nil {
			return cfg
		}
	}
	return config.DefaultConfig()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	if particleDatasheet != "" {
		cfg.ParticleDatasheet = particleDatasheet
	}
	if decaysDatasheet != "" {
		cfg.DecaysDatasheet = decaysDatasheet
	}
	if cmd.Flags().Changed("tau0") {
		cfg.Tau0 = tau0
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("tauf") {
		cfg.Tauf = tauf
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature.Model = temperatureModel
	}
	if dtau > 0 {
		cfg.Dtau = dtau
	} else if cfg.Dtau == 0 {
		cfg.Dtau = cfg.Tau0 / config.DefaultDtauFraction
	}

	net, err := catalog.Load(cfg.ParticleDatasheet, cfg.DecaysDatasheet)
	if err != nil {
		return err
	}

	model, err := cfg.BuildTemperatureModel()
	if err != nil {
		return err
	}

	trackPIDs := track
	if len(trackPIDs) == 0 {
		trackPIDs = cfg.Track
	}
	if len(trackPIDs) == 0 {
		for _, p := range net.Particles() {
			trackPIDs = append(trackPIDs, p.PID)
		}
	}

	samples := driver.Run(net, model, cfg.Tau0, cfg.Dtau, cfg.Tauf, trackPIDs)

	s := store.New(dataDir)
	if err := s.Init(); err != nil {
		return err
	}
	runDir, err := s.Save(store.RunMetadata{
		ID:                store.NewRunID("run", time.Now()),
		Timestamp:         time.Now(),
		ParticleDatasheet: cfg.ParticleDatasheet,
		DecaysDatasheet:   cfg.DecaysDatasheet,
		Tau0:              cfg.Tau0,
		Dtau:              cfg.Dtau,
		Tauf:              cfg.Tauf,
		T0:                cfg.T0,
		Track:             trackPIDs,
	}, samples)
	if err != nil {
		return err
	}
	fmt.Printf("saved run to %s\n", runDir)

	if plot && len(trackPIDs) > 0 {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = s.Densities[trackPIDs[0]]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("n(pid=%d) vs step", trackPIDs[0])),
		)
		fmt.Println(graph)
	}

	return nil
}

func inspectCatalog(cmd *cobra.Command, args []string) error {
	net, err := catalog.Load(particleDatasheet, decaysDatasheet)
	if err != nil {
		return err
	}

	particles := net.Particles()
	sort.Slice(particles, func(i, j int) bool { return particles[i].PID < particles[j].PID })

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tMASS\tWIDTH\tSPIN-STAT\tCHANNELS")
	for _, p := range particles {
		fmt.Fprintf(w, "%d\t%.6f\t%.6e\t%s\t%d\n", p.PID, p.Mass, p.DecayWidth, p.SpinStat, len(p.Reactions()))
	}
	return w.Flush()
}
