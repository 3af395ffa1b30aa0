package commands

import (
	"fmt"
	"io"
	"maps"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swagcodegen/swagcodegen/generator"
	"github.com/swagcodegen/swagcodegen/parser"
)

// GenerateFlags contains flags for the generate and watch commands
type GenerateFlags struct {
	Dialect        string
	Output         string
	ClassName      string
	ModuleName     string
	PackageName    string
	Imports        []string
	TemplateClass  string
	TemplateMethod string
	TemplateType   string
	Data           []string
	DataFile       string
	NoLint         bool
	NoBeautify     bool
	ESNext         bool
	ES6            bool
}

func (f *GenerateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.Dialect, "dialect", "d", "", "target dialect: javascript, typescript, flow, go, custom (default: javascript)")
	fs.StringVarP(&f.Output, "output", "o", "", "output file, or directory for several inputs (default: stdout)")
	fs.StringVar(&f.ClassName, "class-name", "", "generated class or client type name (default: Client)")
	fs.StringVar(&f.ModuleName, "module-name", "", "module name exposed to templates")
	fs.StringVarP(&f.PackageName, "package", "p", "", "Go package name for the go dialect (default: api)")
	fs.StringSliceVar(&f.Imports, "import", nil, "import exposed to templates (repeatable)")
	fs.StringVar(&f.TemplateClass, "template-class", "", "class template file")
	fs.StringVar(&f.TemplateMethod, "template-method", "", "method template file")
	fs.StringVar(&f.TemplateType, "template-type", "", "type template file")
	fs.StringArrayVar(&f.Data, "data", nil, "template data as key=value, dots nest (repeatable)")
	fs.StringVar(&f.DataFile, "data-file", "", "JSON or YAML file of template data")
	fs.BoolVar(&f.NoLint, "no-lint", false, "skip linting the generated code")
	fs.BoolVar(&f.NoBeautify, "no-beautify", false, "skip formatting the generated code")
	fs.BoolVar(&f.ESNext, "esnext", false, "predefine ES2015+ globals while linting")
	fs.BoolVar(&f.ES6, "es6", false, "mark the view model as ES6")
}

// apply copies the flags the user set over the loaded configuration.
func (f *GenerateFlags) apply(cmd *cobra.Command, a *app) error {
	fs := cmd.Flags()
	cfg := a.cfg
	if fs.Changed("dialect") {
		cfg.Dialect = f.Dialect
	}
	if fs.Changed("output") {
		cfg.Output = f.Output
	}
	if fs.Changed("class-name") {
		cfg.ClassName = f.ClassName
	}
	if fs.Changed("module-name") {
		cfg.ModuleName = f.ModuleName
	}
	if fs.Changed("package") {
		cfg.PackageName = f.PackageName
	}
	if fs.Changed("template-class") {
		cfg.Templates.Class = f.TemplateClass
	}
	if fs.Changed("template-method") {
		cfg.Templates.Method = f.TemplateMethod
	}
	if fs.Changed("template-type") {
		cfg.Templates.Type = f.TemplateType
	}
	if f.NoLint {
		cfg.Lint = false
	}
	if f.NoBeautify {
		cfg.Beautify = false
	}
	if fs.Changed("esnext") {
		cfg.ESNext = f.ESNext
	}
	if fs.Changed("es6") {
		cfg.ES6 = f.ES6
	}

	data := make(map[string]any)
	maps.Copy(data, cfg.Data)
	if f.DataFile != "" {
		fileData, err := ReadDataFile(f.DataFile)
		if err != nil {
			return err
		}
		maps.Copy(data, fileData)
	}
	flagData, err := ParseData(f.Data)
	if err != nil {
		return err
	}
	maps.Copy(data, flagData)
	if len(data) > 0 {
		cfg.Data = data
	}
	return cfg.Validate()
}

// generator builds a Generator from the effective configuration. Template
// files are read on every call so watch picks up edits.
func (a *app) generator(imports []string) (*generator.Generator, error) {
	g, err := a.cfg.Generator()
	if err != nil {
		return nil, err
	}
	g.Imports = imports
	g.Logger = a.parserLogger()
	return g, nil
}

func newGenerateCommand(a *app) *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate [flags] <file|url|glob|->...",
		Short: "Generate an API client from Swagger 2.0 documents",
		Long: `Generate an API client from one or more Swagger 2.0 documents.

Inputs may be files, URLs, doublestar globs ('specs/**/*.yaml') or '-' for stdin.
With one input the code goes to --output, or stdout when it is unset. With
several inputs --output is a directory and each client is named after its input.

The custom dialect renders --template-class and --template-method (and
optionally --template-type) instead of the built-in templates.

Example:
  swagcodegen generate swagger.yaml
  swagcodegen generate -d typescript --class-name PetStore -o petstore.ts swagger.yaml
  swagcodegen generate -d go -p petstore -o ./clients 'specs/**/*.yaml'
  swagcodegen generate -d custom --template-class class.tmpl --template-method method.tmpl --data author=me swagger.yaml
  cat swagger.json | swagcodegen generate -d flow -`,
		Args: requireArgs(1, "input"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a); err != nil {
				return err
			}
			inputs, err := ExpandInputs(args)
			if err != nil {
				return err
			}
			if len(inputs) > 1 && a.cfg.Output == "" {
				return fmt.Errorf("--output directory is required with %d inputs", len(inputs))
			}
			g, err := a.generator(flags.Imports)
			if err != nil {
				return err
			}
			for _, input := range inputs {
				if err := a.generateOne(g, input, inputs, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// generateOne renders one input and writes it to the configured output.
func (a *app) generateOne(g *generator.Generator, input string, inputs []string, in io.Reader, out io.Writer) error {
	p := parser.New()
	p.Logger = g.Logger
	parsed, err := ParseInput(input, in, p)
	if err != nil {
		return err
	}

	dialect := a.cfg.Dialect
	res, err := g.GenerateParsed(dialect, *parsed)
	if err != nil {
		return fmt.Errorf("%s: %w", FormatSpecPath(input), err)
	}

	source := FormatSpecPath(input)
	for _, w := range res.Warnings {
		a.logger.Warn("lint warning",
			zap.String("source", source),
			zap.String("code", w.Code),
			zap.String("reason", w.Reason),
			zap.Int("line", w.Line))
	}

	path := OutputPathFor(a.cfg.Output, input, res.Extension(), len(inputs) > 1)
	if path == "" {
		Writef(out, "%s", res.Code)
		return nil
	}
	if err := ValidateOutputPath(path, inputs); err != nil {
		return err
	}
	if err := res.WriteFile(path); err != nil {
		return err
	}
	a.logger.Info("generated client",
		zap.String("source", source),
		zap.String("output", path),
		zap.String("dialect", dialect),
		zap.Int("methods", res.Methods),
		zap.Int("definitions", res.Definitions),
		zap.Duration("load", res.LoadTime),
		zap.Duration("generate", res.GenerateTime))
	return nil
}
