package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/urlkit/core/output"
	"github.com/gaurav-prasanna/urlkit/core/parse"
	"github.com/gaurav-prasanna/urlkit/core/render"
)

func newInspectCmd(a *app) *cobra.Command {
	var outputPath string

	inspectCmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Print the parsed components of a URL as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parse.ParseURLWithQueryString(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			renderer := render.NewJSONRenderer()
			data, err := renderer.RenderParsedURL(parsed)
			if err != nil {
				return err
			}

			writer := output.NewTo(cmd.OutOrStdout())
			if outputPath != "" {
				dest := output.ResolvePath(outputPath, "url", renderer.Extension())
				if writer, err = output.New(dest); err != nil {
					return fmt.Errorf("initializing output writer: %w", err)
				}
			}
			dest, err := writer.Write(data)
			if err != nil {
				return err
			}
			if outputPath != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", dest)
			}
			return nil
		},
	}

	inspectCmd.Flags().StringVar(&outputPath, "output", "", "Output file or directory; .json is added when missing (default: stdout)")
	return inspectCmd
}
