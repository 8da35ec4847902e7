// Root command for the mompack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mompack/mompack/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagPackage   string
	flagJSON      bool
	flagVerbose   bool
)

// defaultPackage holds the default_package value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var defaultPackage string

// logger is the process-wide sugared logger, built once the verbosity is
// known. Library loads receive it so skipped-version warnings surface.
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:     "mompack",
	Short:   "Mompack edits versioned managed-object-model packages",
	Version: version,
	Long: `Mompack is a command-line editor for .xcdatamodeld schema packages:
entities, attributes, relationships, fetched properties, configurations,
and the versioned package structure around them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		defaultPackage = cfg.GetString(cfgKeyDefaultPackage)
		if !cmd.Flags().Changed("json") {
			flagJSON = cfg.GetBool(cfgKeyJSON)
		}
		if !cmd.Flags().Changed("verbose") {
			flagVerbose = cfg.GetBool(cfgKeyVerbose)
		}

		logger, err = buildLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagPackage, "package", "p", "", "package directory to operate on (default: default_package from config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(entityCmd)
	rootCmd.AddCommand(attrCmd)
	rootCmd.AddCommand(relCmd)
	rootCmd.AddCommand(fpCmd)
	rootCmd.AddCommand(configurationCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dumpCmd)
}

// buildLogger builds the process logger: development output when verbose,
// errors only otherwise.
func buildLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		l, err := z.Build()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}
	z := zap.NewProductionConfig()
	z.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	l, err := z.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
