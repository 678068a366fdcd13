package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RENAMEFILES"

var version = "dev"

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "renamefiles [flags] <pattern>",
		Short: "Find and (optionally) rename files with regular expressions",
		Long: `renamefiles matches file and directory names against a regular expression.

Entries are only renamed when --rep is given and --test-run is not. Use $1 or
${1} to reference capture groups in the replacement; write ${1}abc rather than
$1abc when literal text follows a group number.

Every flag can also be set from the environment, e.g. RENAMEFILES_RECURSE=true.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args[0])
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.String("rep", "", "replacement for regex matches; use $1 or ${1} to reference capture groups")
	flags.BoolP("recurse", "r", false, "recurse into child directories")
	flags.BoolP("test-run", "t", false, "show replacements that would occur, but don't rename (alias --preview)")
	flags.StringP("dir", "d", ".", "directory to search")
	flags.Bool("plain", false, "print report lines without the live progress view")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "preview" {
			name = "test-run"
		}
		return pflag.NormalizedName(name)
	})

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("test-run", envPrefix+"_TEST_RUN", envPrefix+"_PREVIEW")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return rootCmd
}
