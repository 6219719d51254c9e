// Package cmd — transform command.
// Applies the selected transformations to one URL:
// parse → transform → serialize.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/urlkit/core/output"
	"github.com/gaurav-prasanna/urlkit/core/transform"
)

func newTransformCmd(a *app) *cobra.Command {
	var flags transformFlags

	transformCmd := &cobra.Command{
		Use:   "transform <url>",
		Short: "Transform a URL and print the result",
		Long: `Transform parses a URL, applies the selected transformations in the order
path, pathname, append-pathname, query, hash, and prints the new URL.

Examples:
  urlkit transform 'https://example.com/?a=1' --add-query b=2
  urlkit transform https://example.com/item/1 --append-pathname edit
  urlkit transform 'https://example.com/old?x=1' --path '/search?q=go'
  urlkit transform https://example.com/#old --hash top`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := flags.build(cmd.Flags())
			if err != nil {
				return err
			}

			out, err := transform.MapURL(fn)(args[0])
			if err != nil {
				return fmt.Errorf("transform: %w", err)
			}
			a.logger.Debug("transformed url", zap.String("in", args[0]), zap.String("out", out))

			_, err = output.NewTo(cmd.OutOrStdout()).WriteLine(out)
			return err
		},
	}

	flags.register(transformCmd.Flags())
	return transformCmd
}
