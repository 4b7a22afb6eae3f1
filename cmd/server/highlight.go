package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/folio/internal/highlight"
	"github.com/dgallion1/folio/internal/view"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var highlightFormats = []string{"text", "json", "yaml", "html", "pp"}

func newHighlightCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "highlight [file]",
		Aliases: []string{"hl"},
		Short:   "Tokenize source code for syntax highlighting",
		Long: `Tokenize a file, or stdin when no file is given, and print the
classified tokens of every line.

Formats:
  text  one line per source line, tokens as kind(text)
  json  the same payload POST /api/highlight returns
  yaml  lines and tokens as YAML
  html  the highlighted code block as rendered on docs pages
  pp    pretty-printed Go values`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src []byte
				err error
			)
			if len(args) == 1 {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			code := strings.TrimSuffix(string(src), "\n")
			return writeHighlighted(cmd, cmd.OutOrStdout(), code, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format ("+strings.Join(highlightFormats, ", ")+")")
	return cmd
}

func writeHighlighted(cmd *cobra.Command, w io.Writer, code, format string) error {
	lines := highlight.Lines(code)
	switch format {
	case "text":
		width := len(fmt.Sprint(len(lines)))
		for _, l := range lines {
			parts := make([]string, 0, len(l.Tokens))
			for _, t := range l.Tokens {
				parts = append(parts, fmt.Sprintf("%s(%q)", t.Kind, t.Text))
			}
			if _, err := fmt.Fprintf(w, "%*d  %s\n", width, l.Number, strings.Join(parts, " ")); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"lines": lines})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"lines": lines}); err != nil {
			return err
		}
		return enc.Close()
	case "html":
		html, err := view.Render(cmd.Context(), view.CodeBlock("cli", code, highlight.DefaultTheme))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(html))
		return err
	case "pp":
		_, err := pp.Fprintln(w, lines)
		return err
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(highlightFormats, ", "))
	}
}
