package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	kerrors "github.com/matzehuels/keyedit/pkg/errors"
	"github.com/matzehuels/keyedit/pkg/pipeline"
)

type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve <layout.xml>",
		Short: "Serve a live preview of a layout over HTTP",
		Long: `Serve renders the layout on every request, so a browser reload shows the
latest saved state while the layout is edited elsewhere.

Routes:
  GET /                                 main keyboard as SVG
  GET /layout.{svg,png,json}            main keyboard
  GET /extensions/{name}/layout.{svg,png,json}
  GET /healthz

Query parameters: style=simple|night, grid=true|false.`,
		Args:              layoutArg,
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := opts.addr
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), args[0], addr, opts.noCache)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	// fail early on a broken layout
	if _, err := readLayout(path, logger); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache, "serve")
	if err != nil {
		return err
	}
	defer runner.Close()

	s := &previewServer{
		path:   path,
		runner: runner,
		opts:   pipeline.OptionsFromConfig(c.Config),
		logger: logger,
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "listen on %s", addr)
	}
	printSuccess("Serving %s", path)
	printKeyValue("address", "http://"+ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// previewServer renders a layout file per request.
type previewServer struct {
	path   string
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/", s.artifact(pipeline.FormatSVG))
	for _, format := range pipeline.ValidFormats {
		r.Get("/layout."+format, s.artifact(format))
	}
	r.Route("/extensions/{name}", func(r chi.Router) {
		for _, format := range pipeline.ValidFormats {
			r.Get("/layout."+format, s.artifact(format))
		}
	})
	return r
}

// artifact returns a handler rendering the requested keyboard in format.
func (s *previewServer) artifact(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.requestOptions(r, format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		l, err := readLayout(s.path, s.logger)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		out, hit, err := s.runner.Render(r.Context(), l, opts)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Cache", strconv.FormatBool(hit))
		_, _ = w.Write(out[format])
	}
}

func (s *previewServer) requestOptions(r *http.Request, format string) (pipeline.Options, error) {
	opts := s.opts
	opts.Formats = []string{format}
	opts.Extension = chi.URLParam(r, "name")

	q := r.URL.Query()
	if style := q.Get("style"); style != "" {
		opts.Style = style
	}
	if grid := q.Get("grid"); grid != "" {
		b, err := strconv.ParseBool(grid)
		if err != nil {
			return opts, kerrors.New(kerrors.ErrCodeInvalidInput, "invalid grid value %q", grid)
		}
		opts.Grid = b
	}
	return opts, opts.Validate()
}

func (s *previewServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch kerrors.GetCode(err) {
	case kerrors.ErrCodeNotFound, kerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case kerrors.ErrCodeInvalidInput, kerrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case kerrors.ErrCodeInvalidLayout, kerrors.ErrCodeInvalidLabel:
		status = http.StatusUnprocessableEntity
	}
	s.logger.Warn("request failed", "path", r.URL.Path, "status", status, "error", err)
	http.Error(w, kerrors.UserMessage(err), status)
}

func (s *previewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}
