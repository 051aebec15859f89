package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nephila016/emailcanon/internal/canonical"
	"github.com/nephila016/emailcanon/internal/config"
	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/domainlist"
	"github.com/nephila016/emailcanon/internal/inspector"
	"github.com/nephila016/emailcanon/internal/provider"
)

var (
	cfgFile   string
	cfg       *config.Config
	version   string
	buildTime string
)

// errMismatch makes the process exit 1 without printing an error.
var errMismatch = errors.New("addresses differ")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "emailcanon",
	Short: "Email address parsing, classification and canonicalization",
	Long: `emailcanon parses email addresses, validates their syntax, classifies
their domains as disposable, free or corporate, and reduces them to the
canonical mailbox their provider actually delivers to.

Features:
  - Syntax validation of the full address, local part and domain
  - Disposable and free provider detection with custom domain lists
  - Role account detection and domain typo suggestions
  - Provider canonicalization (Gmail, Outlook, Yahoo, iCloud, ...)
  - Duplicate mailbox detection across large lists
  - Multiple output formats (JSON, JSONL, CSV, TXT)

Examples:
  emailcanon check First.Last+news@googlemail.com
  emailcanon same john.doe@gmail.com johndoe+x@googlemail.com
  emailcanon bulk -f emails.txt -o results.csv --duplicates
  emailcanon domain hotmail.co.uk
  emailcanon validate user@company.org --rule corporate`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}

		if err := initDebug(viper.GetViper()); err != nil {
			return err
		}
		setColor(!cfg.NoColor)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
}

// Execute adds all child commands to the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMismatch) && !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// SetVersionInfo sets version information
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default $HOME/.emailcanon.yaml)")
	flags.CountP("debug", "d", "Enable debug mode (use -d, -dd, -ddd for more detail)")
	flags.String("debug-file", "", "Write debug output to file")
	flags.BoolP("quiet", "q", false, "Quiet mode - minimal output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("extended-providers", false, "Also canonicalize Yandex and Walla addresses")
	flags.Bool("strict", false, "Treat addresses whose canonical local part is empty as invalid")
	flags.StringSlice("disposable-list", nil, "Extra disposable domain list file (repeatable)")
	flags.StringSlice("free-list", nil, "Extra free provider domain list file (repeatable)")

	// Bind flags to viper
	for key, name := range map[string]string{
		"debug":              "debug",
		"debug_file":         "debug-file",
		"quiet":              "quiet",
		"no_color":           "no-color",
		"extended_providers": "extended-providers",
		"inspect.strict":     "strict",
		"lists.disposable":   "disposable-list",
		"lists.free":         "free-list",
	} {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

// initDebug starts the logger from cfg. The config file is reported here
// because nothing is logged before Init.
func initDebug(v *viper.Viper) error {
	if err := debug.Init(debug.Level(cfg.Debug), cfg.DebugFile, !cfg.NoColor); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		debug.Detail("CONFIG", "Using config file: %s", used)
	}
	return nil
}

// registry returns the provider registry selected by configuration.
func registry() *provider.Registry {
	if cfg.ExtendedProviders {
		return provider.Extended()
	}
	return provider.Default()
}

// loadLists merges the configured list files over the built-in lists.
func loadLists(ctx context.Context) (*domainlist.Lists, error) {
	var sources []domainlist.Source
	for _, path := range cfg.Lists.Disposable {
		sources = append(sources, domainlist.Source{Name: path, Path: path, Kind: domainlist.KindDisposable, Optional: cfg.Lists.Optional})
	}
	for _, path := range cfg.Lists.Free {
		sources = append(sources, domainlist.Source{Name: path, Path: path, Kind: domainlist.KindFree, Optional: cfg.Lists.Optional})
	}
	if len(sources) == 0 {
		return domainlist.Builtin(), nil
	}
	return domainlist.Load(ctx, sources)
}

// newInspector builds an inspector from configuration and the loaded lists.
func newInspector(ctx context.Context) (*inspector.Inspector, error) {
	lists, err := loadLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load domain lists: %w", err)
	}

	return inspector.New(canonical.New(registry()), lists.Classifier(), &inspector.Config{
		StrictCanonical: cfg.Inspect.Strict,
		CheckRole:       cfg.Inspect.CheckRole,
		SuggestTypos:    cfg.Inspect.SuggestTypos,
	}), nil
}
