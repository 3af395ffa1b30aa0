package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/view"
)

// ViewFlags contains flags for the view command
type ViewFlags struct {
	Format    string
	Query     string
	Dialect   string
	ClassName string
}

func newViewCommand(a *app) *cobra.Command {
	flags := &ViewFlags{}

	cmd := &cobra.Command{
		Use:   "view [flags] <file|url|->",
		Short: "Print the view model templates are rendered from",
		Long: `Print the view model built from a Swagger 2.0 document: the data every
template receives. Use it to write custom templates.

--query selects part of the model with gjson syntax.

Example:
  swagcodegen view swagger.yaml
  swagcodegen view --format yaml swagger.yaml
  swagcodegen view --query 'methods.#.methodName' swagger.yaml
  swagcodegen view -d go --query 'definitions.#.goType' swagger.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(flags.Format); err != nil {
				return err
			}
			dialect := a.cfg.Dialect
			if flags.Dialect != "" {
				dialect = flags.Dialect
			}
			className := a.cfg.ClassName
			if flags.ClassName != "" {
				className = flags.ClassName
			}

			p := parser.New()
			p.Logger = a.parserLogger()
			parsed, err := ParseInput(args[0], cmd.InOrStdin(), p)
			if err != nil {
				return err
			}
			model, err := view.New(
				view.WithDialect(dialect),
				view.WithClassName(className),
				view.WithModuleName(a.cfg.ModuleName),
				view.WithPackageName(a.cfg.PackageName),
				view.WithES6(a.cfg.ES6),
				view.WithLogger(p.Logger),
			).Build(parsed.Document)
			if err != nil {
				return fmt.Errorf("%s: %w", FormatSpecPath(args[0]), err)
			}

			var data any = model
			if flags.Query != "" {
				raw, err := json.Marshal(model)
				if err != nil {
					return fmt.Errorf("encoding view model: %w", err)
				}
				res := gjson.GetBytes(raw, flags.Query)
				if !res.Exists() {
					return fmt.Errorf("query %q matched nothing", flags.Query)
				}
				data = res.Value()
			}

			out, err := MarshalStructured(data, flags.Format)
			if err != nil {
				return err
			}
			Writef(cmd.OutOrStdout(), "%s\n", bytes.TrimRight(out, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", FormatJSON, "output format: json, yaml")
	cmd.Flags().StringVarP(&flags.Query, "query", "q", "", "gjson path selecting part of the model")
	cmd.Flags().StringVarP(&flags.Dialect, "dialect", "d", "", "dialect whose type converters fill type descriptors")
	cmd.Flags().StringVar(&flags.ClassName, "class-name", "", "class name recorded in the model")
	return cmd
}
