// Package cmd — rewrite command.
// Applies one transformation to every link of an HTML document:
// read → rewrite links → render → write.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/output"
	"github.com/gaurav-prasanna/urlkit/core/render"
	"github.com/gaurav-prasanna/urlkit/core/transform"
	"github.com/gaurav-prasanna/urlkit/rewrite"
)

type rewriteFlags struct {
	transformFlags

	host       string
	skipStatic bool
	markdown   bool
	output     string
}

func newRewriteCmd(a *app) *cobra.Command {
	var flags rewriteFlags

	rewriteCmd := &cobra.Command{
		Use:   "rewrite <file|->",
		Short: "Transform the links of an HTML document",
		Long: `Rewrite reads an HTML document (from a file, or stdin with "-"), applies the
selected transformations to every link attribute, and writes the document
back out as HTML or Markdown. Relative links are transformed as written.

Examples:
  urlkit rewrite page.html --add-query utm_source=newsletter --host example.com
  curl -s https://example.com | urlkit rewrite - --clear-hash --skip-static
  urlkit rewrite page.html --add-query ref=docs --markdown --output out/page.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRewrite(cmd, args[0], &flags)
		},
	}

	flags.register(rewriteCmd.Flags())
	rewriteCmd.Flags().StringVar(&flags.host, "host", "", "Only rewrite links on this host (relative links always match)")
	rewriteCmd.Flags().BoolVar(&flags.skipStatic, "skip-static", false, "Leave links to images, styles, scripts and other assets untouched")
	rewriteCmd.Flags().BoolVar(&flags.markdown, "markdown", false, "Output Markdown instead of HTML")
	rewriteCmd.Flags().StringVar(&flags.output, "output", "", "Output file or directory; the format's extension is added when missing (default: stdout)")
	rewriteCmd.Flags().StringSlice("target", nil, "Link attributes to rewrite as tag@attr (default: a@href,area@href,link@href,form@action)")
	return rewriteCmd
}

func (a *app) runRewrite(cmd *cobra.Command, source string, flags *rewriteFlags) error {
	fn, err := flags.build(cmd.Flags())
	if err != nil {
		return err
	}

	targets, err := rewrite.ParseTargets(a.cfg.RewriteTargets)
	if err != nil {
		return err
	}
	rw, err := rewrite.New(transform.MapURL(fn), rewrite.Rules{
		Host:       flags.host,
		SkipStatic: flags.skipStatic,
	}, targets)
	if err != nil {
		return err
	}

	in, closeIn, err := openSource(cmd, source)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, stats, err := rw.Rewrite(in)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", source, err)
	}
	a.logger.Info("rewrote links",
		zap.String("source", source),
		zap.Int("rewritten", stats.Rewritten),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed))

	renderer := selectRenderer(flags.markdown)
	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer := output.NewTo(cmd.OutOrStdout())
	if flags.output != "" {
		dest := output.ResolvePath(flags.output, outputName(source), renderer.Extension())
		if writer, err = output.New(dest); err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}
	dest, err := writer.Write(data)
	if err != nil {
		return err
	}

	if flags.output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s (%d rewritten, %d skipped, %d failed)\n",
			dest, stats.Rewritten, stats.Skipped, stats.Failed)
	}
	return nil
}

// openSource opens the document to rewrite; "-" reads stdin.
func openSource(cmd *cobra.Command, source string) (io.Reader, func(), error) {
	if source == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", source, err)
	}
	return f, func() { f.Close() }, nil
}

// selectRenderer creates the Renderer for the chosen output format.
func selectRenderer(markdown bool) core.Renderer {
	if markdown {
		return render.NewMarkdownRenderer()
	}
	return render.NewHTMLRenderer()
}

// outputName names the output file after the source document.
func outputName(source string) string {
	if source == "-" {
		return "stdin"
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
