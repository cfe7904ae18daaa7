package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erraggy/oastsgen/generator"
	"github.com/erraggy/oastsgen/internal/cliutil"
)

func newInspectCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the extracted types, security schemes and routes",
		Long: `Inspect extracts an OpenAPI 3 document without writing a client and prints
what would be generated. Diagnostics are included in the report; the command
exits with status 1 when there is any.`,
		Example: `  oastsgen inspect openapi.yaml
  oastsgen inspect --format json openapi.yaml | jq '.routes[].name'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := v.GetString(keyFormat)
			if err := ValidateOutputFormat(format); err != nil {
				return err
			}
			return HandleInspect(cmd, args[0], format, v.GetInt(keyConcurrency), v.GetBool(keyVerbose))
		},
	}
	cmd.Flags().StringP(keyFormat, "f", FormatText, "output format: text, json or yaml")
	mustBind(v, keyFormat, cmd.Flags().Lookup(keyFormat))
	return cmd
}

// HandleInspect extracts specPath and prints its summary to the command's
// stdout in the given format.
func HandleInspect(cmd *cobra.Command, specPath, format string, concurrency int, verbose bool) error {
	opts, err := inputOptions(cmd, specPath)
	if err != nil {
		return err
	}
	opts = append(opts,
		generator.WithConcurrency(concurrency),
		generator.WithLogger(newLogger(cmd.ErrOrStderr(), verbose)),
	)

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("inspecting document: %w", err)
	}

	summary := result.Summary()
	if format == FormatText {
		outputSummaryText(cmd.OutOrStdout(), summary)
	} else if err := OutputStructured(cmd.OutOrStdout(), summary, format); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("document has %d issue(s)", len(result.Issues))
	}
	return nil
}

func outputSummaryText(w io.Writer, s generator.Summary) {
	cliutil.Writef(w, "Source: %s\n", s.Source)

	cliutil.Writef(w, "\nTypes (%d):\n", len(s.Types))
	for _, t := range s.Types {
		cliutil.Writef(w, "  %s = %s\n", t.Name, t.Type)
	}

	cliutil.Writef(w, "\nSecurity Schemes (%d):\n", len(s.Schemes))
	for _, scheme := range s.Schemes {
		marker := ""
		if scheme.Name == s.Security {
			marker = " (default)"
		}
		cliutil.Writef(w, "  %s: header %s%s\n", scheme.Name, scheme.Header, marker)
	}

	cliutil.Writef(w, "\nRoutes (%d):\n", len(s.Routes))
	for _, r := range s.Routes {
		cliutil.Writef(w, "  %s %s %s\n", r.Name, strings.ToUpper(r.Method), r.Endpoint)
		for _, p := range r.Parameters {
			cliutil.Writef(w, "    %s %s: %s\n", p.In, p.Name, p.Type)
		}
		if r.Body != nil {
			cliutil.Writef(w, "    body %s: %s\n", r.Body.MimeType, r.Body.Type)
		}
		if len(r.Responses) > 0 {
			cliutil.Writef(w, "    responses: %s\n", strings.Join(r.Responses, ", "))
		}
		if r.Security != "" {
			cliutil.Writef(w, "    security: %s\n", r.Security)
		}
	}

	if len(s.Issues) > 0 {
		cliutil.Writef(w, "\n")
		cliutil.WriteList(w, "Issues", s.Issues)
	}
}
