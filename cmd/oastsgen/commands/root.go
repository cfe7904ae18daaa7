// Package commands provides the cobra command tree for the oastsgen CLI.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, OASTSGEN_* environment variables and
// the optional config file.
const (
	keyVerbose     = "verbose"
	keyConcurrency = "concurrency"
	keyRuntime     = "runtime"
	keyFormat      = "format"
	keyStdout      = "stdout"
)

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "OASTSGEN"

// NewRootCommand builds the oastsgen command tree. Each call returns an
// independent tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var configFile string

	root := &cobra.Command{
		Use:   "oastsgen",
		Short: "Generate TypeScript HTTP clients from OpenAPI 3 documents",
		Long: `oastsgen reads an OpenAPI 3 document and writes a dependency-free
TypeScript module: one type declaration per component schema, an init
function configuring the base URL and credentials, and one async function
per operation.

Settings can be given as flags, as OASTSGEN_* environment variables
(OASTSGEN_RUNTIME, OASTSGEN_CONCURRENCY, ...) or in a YAML file passed
with --config. Flags win over the environment, which wins over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile == "" {
				return nil
			}
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.BoolP(keyVerbose, "v", false, "log debug output to stderr")
	flags.Int(keyConcurrency, 1, "number of routes extracted in parallel")
	mustBind(v, keyVerbose, flags.Lookup(keyVerbose))
	mustBind(v, keyConcurrency, flags.Lookup(keyConcurrency))

	root.AddCommand(
		newGenerateCommand(v),
		newInspectCommand(v),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}
