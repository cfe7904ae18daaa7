package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erraggy/oastsgen/emitter"
	"github.com/erraggy/oastsgen/generator"
	"github.com/erraggy/oastsgen/internal/cliutil"
)

// GenerateFlags contains the resolved settings of the generate command.
type GenerateFlags struct {
	Runtime     emitter.Runtime
	Concurrency int
	Stdout      bool
	Verbose     bool
}

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <input> [output]",
		Short: "Generate a TypeScript client",
		Long: `Generate a TypeScript client from an OpenAPI 3 document.

The input must be a .json, .yaml or .yml file, or - to read from stdin.
Diagnostics are printed to stderr; when there is any, no output is written
and the command exits with status 1.`,
		Example: `  oastsgen generate openapi.yaml src/api.ts
  oastsgen generate --runtime config openapi.json src/api.ts
  cat openapi.yaml | oastsgen generate --stdout -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := generateFlagsFrom(v)
			if err != nil {
				return err
			}
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			return HandleGenerate(cmd, args[0], output, flags)
		},
	}

	cmd.Flags().String(keyRuntime, emitter.RuntimeGlobal.String(), "runtime style: global or config")
	cmd.Flags().Bool(keyStdout, false, "print the client to stdout instead of writing a file")
	mustBind(v, keyRuntime, cmd.Flags().Lookup(keyRuntime))
	mustBind(v, keyStdout, cmd.Flags().Lookup(keyStdout))
	return cmd
}

func generateFlagsFrom(v *viper.Viper) (GenerateFlags, error) {
	runtime, err := emitter.ParseRuntime(v.GetString(keyRuntime))
	if err != nil {
		return GenerateFlags{}, err
	}
	return GenerateFlags{
		Runtime:     runtime,
		Concurrency: v.GetInt(keyConcurrency),
		Stdout:      v.GetBool(keyStdout),
		Verbose:     v.GetBool(keyVerbose),
	}, nil
}

// HandleGenerate runs the generator on specPath and writes the client to
// outputPath, or to the command's stdout when flags.Stdout is set.
func HandleGenerate(cmd *cobra.Command, specPath, outputPath string, flags GenerateFlags) error {
	stderr := cmd.ErrOrStderr()

	if outputPath == "" && !flags.Stdout {
		return errors.New("an output file is required (or use --stdout)")
	}
	if outputPath != "" && flags.Stdout {
		return errors.New("cannot use both an output file and --stdout")
	}
	if outputPath != "" {
		outputPath = filepath.Clean(outputPath)
		if err := ValidateOutputPath(stderr, outputPath, []string{specPath}); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(outputPath); err != nil {
			return err
		}
	}

	opts, err := inputOptions(cmd, specPath)
	if err != nil {
		return err
	}
	opts = append(opts,
		generator.WithRuntime(flags.Runtime),
		generator.WithConcurrency(flags.Concurrency),
		generator.WithLogger(newLogger(stderr, flags.Verbose)),
	)

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("generating client: %w", err)
	}

	outputSpecHeader(stderr, specPath)
	outputIssues(stderr, result)
	if !result.Success {
		return fmt.Errorf("generation failed with %d issue(s)", len(result.Issues))
	}

	if flags.Stdout {
		cliutil.Writef(cmd.OutOrStdout(), "%s\n", result.Content)
	} else if err := result.WriteFile(outputPath); err != nil {
		return fmt.Errorf("writing client: %w", err)
	}

	cliutil.Writef(stderr, "Types: %d\n", result.TypeCount)
	cliutil.Writef(stderr, "Security Schemes: %d\n", result.SchemeCount)
	cliutil.Writef(stderr, "Routes: %d\n", result.RouteCount)
	cliutil.Writef(stderr, "Total Time: %v\n", result.LoadTime+result.ExtractTime+result.EmitTime)
	if !flags.Stdout {
		cliutil.Writef(stderr, "Output: %s\n", outputPath)
	}
	return nil
}
