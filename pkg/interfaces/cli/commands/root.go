package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/stockpile/pkg/config"
	"github.com/vsinha/stockpile/pkg/infrastructure/repositories/tsv"
)

type rootFlags struct {
	configFile string
	dataRoot   string
	profile    string
	format     string
	verbose    bool

	output string
	xlsx   string

	limit    int
	topItems int
	allItems bool
}

// NewRootCommand builds the stockpile command tree
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	var appCfg *config.AppConfig

	// resolve merges flags that were set over the loaded config
	resolve := func(cmd *cobra.Command) Config {
		if cmd.Flags().Changed("data-root") {
			appCfg.Data.Root = flags.dataRoot
		}
		if cmd.Flags().Changed("profile") {
			appCfg.Data.Profile = flags.profile
		}

		cfg := Config{
			App:      appCfg,
			Format:   appCfg.Output.Format,
			Verbose:  flags.verbose,
			Limit:    appCfg.Trips.Limit,
			TopItems: appCfg.Trips.TopItems,
			AllItems: flags.allItems,
			Stdout:   cmd.OutOrStdout(),
			Stderr:   cmd.ErrOrStderr(),
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = flags.format
		}
		if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
			cfg.OutputFile = flags.output
		}
		if f := cmd.Flags().Lookup("xlsx"); f != nil && f.Changed {
			cfg.XLSXFile = flags.xlsx
		}
		if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
			cfg.Limit = flags.limit
		}
		if f := cmd.Flags().Lookup("top-items"); f != nil && f.Changed {
			cfg.TopItems = flags.topItems
		}
		return cfg
	}

	root := &cobra.Command{
		Use:   "stockpile [FILE]",
		Short: "Stockpile deficit/surplus reports and transfer trip suggestions",
		Long: `Cross-references stockpile exports against per-base supply targets.

With no subcommand the report is printed. A single existing file argument
is described instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configFile)
			if err != nil {
				return err
			}
			appCfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if !tsv.IsFile(args[0]) {
					return fmt.Errorf("unknown command or file %q", args[0])
				}
				return Describe(cmd.OutOrStdout(), args[0])
			}
			return NewReportCommand(resolve(cmd)).Execute(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "path to stockpile.toml (default: next to the executable, then ./stockpile.toml)")
	pf.StringVar(&flags.dataRoot, "data-root", "", "directory containing stockpiles.tsv, base_requirements/, and current_stock/")
	pf.StringVar(&flags.profile, "profile", "", "base requirements profile under base_requirements/ (default collie)")
	pf.StringVar(&flags.format, "format", "", "output format: text, json")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "print progress to stderr")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate stockpile requirement report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewReportCommand(resolve(cmd)).Execute(cmd.Context())
		},
	}
	reportCmd.Flags().StringVar(&flags.output, "output", "", "optional path to write the detailed report as TSV")
	reportCmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "optional path to write the report as an Excel workbook")

	tripsCmd := &cobra.Command{
		Use:   "trips",
		Short: "Suggest transfer trips from surplus to deficit stockpiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTripsCommand(resolve(cmd)).Execute(cmd.Context())
		},
	}
	tripsCmd.Flags().IntVarP(&flags.limit, "limit", "n", 0, "show at most this many trips (0 = all)")
	tripsCmd.Flags().IntVar(&flags.topItems, "top-items", 3, "items shown per trip")
	tripsCmd.Flags().BoolVar(&flags.allItems, "all-items", false, "show the full item breakdown of each trip")
	tripsCmd.Flags().StringVar(&flags.xlsx, "xlsx", "", "optional path to write the trips as an Excel workbook")

	describeCmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Show the columns and row count of a TSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Describe(cmd.OutOrStdout(), args[0])
		},
	}

	root.AddCommand(reportCmd, tripsCmd, describeCmd)
	return root
}

// Execute runs the command line with the process arguments
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
