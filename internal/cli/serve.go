package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	latio "github.com/wordlattice/lattice/pkg/io"
	"github.com/wordlattice/lattice/pkg/nodelink"
)

type serveOpts struct {
	addr string
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve <graph.json>",
		Short: "Serve an exported graph over HTTP",
		Long: `Serve exposes a previously exported graph JSON file over HTTP for
the browser visualizer.

Endpoints:
  GET /healthz     liveness check
  GET /graph.json  the graph, optionally truncated with ?limit=N
  GET /stats       node and link counts

Examples:
  lattice serve graph.json
  lattice serve graph.json --addr :9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (defaults to config, then :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, opts *serveOpts) error {
	g, err := latio.ImportJSON(input)
	if err != nil {
		printError("%s", err.Error())
		return err
	}

	addr := opts.addr
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.graphRouter(g),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Info("serving graph", "addr", addr, "nodes", len(g.Nodes), "links", len(g.Links))
	printInfo("%s", "Serving "+input+" on "+addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			printError("%s", err.Error())
			return err
		}
		return nil
	}
}

// graphRouter builds the HTTP routes for a loaded graph.
func (c *CLI) graphRouter(g *nodelink.Graph) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	r.Get("/graph.json", func(w http.ResponseWriter, req *http.Request) {
		view := g
		if raw := req.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			view = g.Truncate(limit)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := latio.WriteJSON(view, w); err != nil {
			c.Logger.Error("write graph", "error", err)
		}
	})

	r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{
			"nodes": len(g.Nodes),
			"links": len(g.Links),
		})
	})

	return r
}

// requestLogger logs each request with method, path, status and duration.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		c.Logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
