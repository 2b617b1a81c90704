package main

import (
	"log"
	"log/slog"
	"os"

	"svgreduce/pkg/cfg"
	"svgreduce/pkg/pathd"

	"github.com/spf13/cobra"
)

var (
	configPath string
	decimals   int
	devMode    bool
	lenient    bool
	check      bool
	verbose    bool

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "svgreduce",
	Short: "Shorten SVG path data",
	Long: `svgreduce rewrites the d attribute of SVG paths into a shorter form that
draws the same shape. Fractional coordinates are moved into integer space and
compensated with a scale transform on the owning element.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		pathd.SetLogger(logger)
	},
}

func init() {
	defaults := cfg.Default()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "options file (.toml, .yaml or .json)")
	flags.IntVar(&decimals, "decimals", defaults.MaxDecimalPlaces, "maximum number of decimal places to keep")
	flags.BoolVar(&devMode, "dev", defaults.DevMode, "put every command on its own line")
	flags.BoolVar(&lenient, "lenient", defaults.Lenient, "pass malformed numbers through as NaN instead of failing")
	flags.BoolVar(&check, "check", false, "verify that every optimized path keeps its vertices")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	rootCmd.AddCommand(pathCmd, fileCmd)
}

// loadConfig layers the flags set on the command line over the options file,
// or over the defaults when there is none.
func loadConfig(cmd *cobra.Command) (cfg.Config, error) {
	c := cfg.Default()
	if configPath != "" {
		var err error
		if c, err = cfg.Load(configPath); err != nil {
			return cfg.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("decimals") {
		c.MaxDecimalPlaces = decimals
	}
	if flags.Changed("dev") {
		c.DevMode = devMode
	}
	if flags.Changed("lenient") {
		c.Lenient = lenient
	}
	return c, c.Validate()
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
