package commands

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/thimo234/ha-energy-chard/internal/presentation/render"
	"github.com/thimo234/ha-energy-chard/internal/util"
	"github.com/thimo234/ha-energy-chard/internal/widget"
)

var (
	port int

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart over HTTP",
		Long: `serve exposes the rendered chart on a small HTTP server. Every request
re-reads the snapshot and derives the chart from scratch, so the page always
reflects the latest push.

Endpoints:
  /          full page embedding the chart
  /fragment  bare widget fragment for embedding
  /config    stub configuration object for host tooling`,
		RunE: runServe,
	}
)

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", 7381, "Listen port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	card := newCard()
	htmlRenderer := render.NewHTMLRenderer()

	derive := func() render.Chart {
		card.Update(loadSnapshot())
		return card.Derive(currentTime())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeHTML(w, htmlRenderer.Page, derive())
	})
	mux.HandleFunc("/fragment", func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, htmlRenderer.Fragment, derive())
	})
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		data, err := sonic.Marshal(widget.StubConfig())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	addr := fmt.Sprintf(":%d", port)
	util.LogInfof("Listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func writeHTML(w http.ResponseWriter, renderFn func(render.Chart) (string, error), chart render.Chart) {
	out, err := renderFn(chart)
	if err != nil {
		util.LogErrorf("Render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, out)
}
