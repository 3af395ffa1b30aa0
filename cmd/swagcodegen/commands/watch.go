package commands

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swagcodegen/swagcodegen/internal/watch"
)

func newWatchCommand(a *app) *cobra.Command {
	flags := &GenerateFlags{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [flags] <file|glob>...",
		Short: "Regenerate clients when documents or templates change",
		Long: `Generate clients like 'generate', then keep watching the input documents and
template files. A changed document regenerates its own client; a changed
template regenerates all of them. Failures are logged and watching continues.

--output is required. Stop with Ctrl+C.

Example:
  swagcodegen watch -d typescript -o client.ts swagger.yaml
  swagcodegen watch -d custom --template-class class.tmpl --template-method method.tmpl -o ./out 'specs/*.yaml'
  swagcodegen watch --debounce 1s -o ./clients 'specs/**/*.json'`,
		Args: requireArgs(1, "input"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a); err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				a.cfg.Watch.Debounce = debounce
			}
			if a.cfg.Output == "" {
				return fmt.Errorf("watch requires --output")
			}
			inputs, err := ExpandInputs(args)
			if err != nil {
				return err
			}

			w, err := watch.New(a.logger, a.cfg.Watch.Debounce)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			byPath := make(map[string]string, len(inputs))
			for _, input := range inputs {
				if input == StdinFilePath || isURL(input) {
					return fmt.Errorf("watch cannot follow %s", FormatSpecPath(input))
				}
				abs, err := filepath.Abs(input)
				if err != nil {
					return err
				}
				byPath[abs] = input
				if err := w.Add(input); err != nil {
					return err
				}
			}
			for _, tmpl := range []string{a.cfg.Templates.Class, a.cfg.Templates.Method, a.cfg.Templates.Type} {
				if tmpl == "" {
					continue
				}
				if err := w.Add(tmpl); err != nil {
					return err
				}
			}

			r := &regenerator{app: a, imports: flags.Imports, inputs: inputs}
			r.run(inputs)
			return w.Run(a.ctx, func(ev watch.Event) {
				a.logger.Info("change detected", zap.String("path", ev.Path), zap.String("operation", ev.Operation))
				if input, ok := byPath[ev.Path]; ok {
					r.run([]string{input})
					return
				}
				r.run(inputs)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period after a change before regenerating")
	return cmd
}

// regenerator serializes regeneration; watch callbacks arrive on timer goroutines.
type regenerator struct {
	app     *app
	imports []string
	inputs  []string
	mu      sync.Mutex
}

func (r *regenerator) run(targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, err := r.app.generator(r.imports)
	if err != nil {
		r.app.logger.Error("loading templates failed", zap.Error(err))
		return
	}
	for _, input := range targets {
		if err := r.app.generateOne(g, input, r.inputs, nil, nil); err != nil {
			r.app.logger.Error("generation failed", zap.String("source", input), zap.Error(err))
		}
	}
}
