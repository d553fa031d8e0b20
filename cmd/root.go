package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monkey-sim/monkey-sim/sim"
	"github.com/monkey-sim/monkey-sim/sim/parse"
)

var (
	// CLI flags for the simulation run
	inputFile   string // Path to the monkey specification file
	rounds      int    // Number of rounds to simulate
	reliefMode  string // Relief mode (divide, modulus)
	preset      string // Named preset overriding rounds and relief
	presetsFile string // Path to a YAML presets file
	logLevel    string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "monkey-sim",
	Short: "Round-based simulator for the monkey keep-away puzzle",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the keep-away simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Environment variables back-fill flags the user did not set
		defaults, err := parseEnv()
		if err != nil {
			logrus.Fatalf("Invalid environment configuration: %v", err)
		}
		if !cmd.Flags().Changed("log") {
			logLevel = defaults.LogLevel
		}
		if !cmd.Flags().Changed("presets-file") && defaults.PresetsFile != "" {
			presetsFile = defaults.PresetsFile
		}

		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if inputFile == "" {
			logrus.Fatalf("Monkey specification file not provided. Exiting simulation.")
		}

		// A preset overrides rounds and relief mode
		var expected int64
		if preset != "" {
			presets, err := LoadPresets(presetsFile)
			if err != nil {
				logrus.Fatalf("Unable to read presets: %v", err)
			}
			p, ok := presets[preset]
			if !ok {
				logrus.Fatalf("Unknown preset %q", preset)
			}
			rounds, reliefMode, expected = p.Rounds, p.Relief, p.Expected
		}

		simulation, err := parse.LoadFile(inputFile)
		if err != nil {
			logrus.Fatalf("Unable to load monkey specification: %v", err)
		}

		var relief sim.ReliefPolicy
		switch sim.ReliefMode(reliefMode) {
		case sim.ReliefDivide:
			relief = sim.NewDivideRelief()
		case sim.ReliefModulus:
			relief, err = sim.NewModulusRelief(simulation)
			if err != nil {
				logrus.Fatalf("Unable to build modulus relief: %v", err)
			}
		default:
			logrus.Fatalf("Unknown relief mode %q", reliefMode)
		}

		// Log configuration
		logrus.Infof("Starting simulation with %d monkeys, rounds=%d, relief=%s",
			simulation.Len(), rounds, reliefMode)

		startTime := time.Now() // Get current time (start)

		// Initialize and run the simulator
		s := sim.NewSimulator(simulation, rounds, relief)
		counter, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		counter.Print()

		if expected != 0 {
			business, err := counter.Business()
			if err != nil {
				logrus.Fatalf("Unable to compute monkey business: %v", err)
			}
			if business != expected {
				logrus.Warnf("Preset %q expected %d, got %d", preset, expected, business)
			}
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&inputFile, "input", "", "Path to the monkey specification file")
	runCmd.Flags().IntVar(&rounds, "rounds", sim.ShortRunRounds, "Number of rounds to simulate")
	runCmd.Flags().StringVar(&reliefMode, "relief", string(sim.ReliefDivide), "Relief mode (divide, modulus)")
	runCmd.Flags().StringVar(&preset, "preset", "", "Named preset overriding rounds and relief (e.g. short, long)")
	runCmd.Flags().StringVar(&presetsFile, "presets-file", "", "Path to a YAML presets file")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
