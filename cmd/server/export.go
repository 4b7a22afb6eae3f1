package main

import (
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dgallion1/folio/internal/export"
	"github.com/dgallion1/folio/internal/session"
	"github.com/dgallion1/folio/internal/site"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out    string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole site to a directory as static files",
		Long: `Render every page into DIR/<path>/index.html, plus 404.html and the
static assets. TOC entries without a matching anchor are reported; with
--strict they fail the export.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := a.loadContent()
			if err != nil {
				return err
			}
			srv := site.NewServer(store, session.NewRegistry(0, 0, a.log), a.log, a.cfg)

			sum, err := export.New(srv, out, a.cfg.ExportWorkers, a.log).Run(ctx, export.Pages(store.Catalog()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "exported to %s: %s\n", out, sum)
			for _, r := range sum.Failed() {
				fmt.Fprintf(w, "  failed %s: %v\n", r.Path, r.Err)
			}
			missing := sum.MissingAnchors()
			paths := make([]string, 0, len(missing))
			for p := range missing {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				for _, e := range missing[p] {
					fmt.Fprintf(w, "  missing anchor %s#%s (%s)\n", p, e.ID, e.Title)
				}
			}

			if n := len(sum.Failed()); n > 0 {
				return fmt.Errorf("%d pages failed", n)
			}
			if strict && len(missing) > 0 {
				return fmt.Errorf("%d pages have missing anchors", len(missing))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().Int("workers", 4, "concurrent page renders")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a TOC entry has no anchor")
	return cmd
}
