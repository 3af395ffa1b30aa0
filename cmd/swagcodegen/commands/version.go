package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	swagcodegen "github.com/swagcodegen/swagcodegen"
	"github.com/swagcodegen/swagcodegen/view"
)

func newVersionCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version must work without a readable config file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !detailed {
				Writef(out, "swagcodegen %s\n", swagcodegen.Version())
				return nil
			}
			Writef(out, "swagcodegen - API client generator for Swagger documents\n\n")
			Writef(out, "Version:      %s\n", swagcodegen.Version())
			Writef(out, "Swagger:      %s\n", view.SupportedVersion)
			Writef(out, "Go Version:   %s\n", runtime.Version())
			Writef(out, "OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "show detailed version information")
	return cmd
}
