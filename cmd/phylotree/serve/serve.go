// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package serve implements a command to expose
// the tree operations
// as a small JSON-over-HTTP service.
package serve

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/layout"
	"github.com/js-arias/phylotree/match"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: "serve [--addr <address>] [--config <config-file>]",
	Short: "serve tree operations over HTTP",
	Long: `
Command serve starts an HTTP server exposing the tree operations as a JSON
API, so a presentation layer (for example a web front-end drawing the trees)
can use the engine without linking it.

The endpoints, all accepting a POST with a JSON body, are:

	/api/parse     parse a Newick string, return the tree as JSON
	/api/reroot    reroot a tree on an outgroup
	/api/distance  patristic distance matrix of a tree
	/api/compare   Robinson-Foulds comparison of two trees
	/api/annotate  attach (name, count) pairs to the leaves of a tree
	/api/layout    2D coordinates for drawing a tree

Expected domain failures are reported as a JSON object with an "error" field
and a meaningful HTTP status: 400 for malformed input, 404 for unknown leaf
names, and 422 for trees that cannot be compared.

By default, the server listens on address "localhost:8991"; use the flag
--addr to change it. The flag --config indicates a TOML configuration file:

	# phylotree server configuration
	addr = "localhost:8991"
	# guards against pathological input
	max-depth = 10000
	max-nodes = 1000000

Flags take precedence over the configuration file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addrFlag string
var configFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addrFlag, "addr", "", "")
	c.Flags().StringVar(&configFile, "config", "", "")
}

type config struct {
	Addr     string `toml:"addr"`
	MaxDepth int    `toml:"max-depth"`
	MaxNodes int    `toml:"max-nodes"`
}

func readConfig(name string) (config, error) {
	cfg := config{Addr: "localhost:8991"}
	if name == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(name, &cfg); err != nil {
		return cfg, fmt.Errorf("while reading config %q: %v", name, err)
	}
	return cfg, nil
}

func run(c *command.Command, args []string) error {
	cfg, err := readConfig(configFile)
	if err != nil {
		return err
	}
	if addrFlag != "" {
		cfg.Addr = addrFlag
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "phylotree",
	})

	s := &server{
		cfg:    cfg,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", s.parse)
		r.Post("/reroot", s.reroot)
		r.Post("/distance", s.distance)
		r.Post("/compare", s.compare)
		r.Post("/annotate", s.annotate)
		r.Post("/layout", s.layout)
	})

	logger.Info("listening", "addr", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, r)
}

type server struct {
	cfg    config
	logger *log.Logger
}

func (s *server) reader(support string) (newick.Reader, error) {
	r := newick.Reader{
		MaxDepth: s.cfg.MaxDepth,
		MaxNodes: s.cfg.MaxNodes,
	}
	switch support {
	case "", "auto":
		r.Support = newick.SupportAuto
	case "label":
		r.Support = newick.SupportAsLabel
	case "length":
		r.Support = newick.SupportAfterLength
	default:
		return r, fmt.Errorf("invalid support convention: %q", support)
	}
	return r, nil
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"dur", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type apiError struct {
	Error  string `json:"error"`
	Offset *int   `json:"offset,omitempty"`
}

// fail maps the error taxonomy of the engine
// to HTTP status codes.
func fail(w http.ResponseWriter, err error) {
	var pe *newick.ParseError
	if errors.As(err, &pe) {
		off := pe.Offset
		writeJSON(w, http.StatusBadRequest, apiError{Error: pe.Error(), Offset: &off})
		return
	}
	var nf *phylo.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, apiError{Error: nf.Error()})
		return
	}
	if errors.Is(err, phylo.ErrIncomparable) {
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("invalid request: %v", err)})
		return false
	}
	return true
}

func (s *server) parse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Newick  string `json:"newick"`
		Support string `json:"support"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, err := s.reader(req.Support)
	if err != nil {
		fail(w, err)
		return
	}
	t, err := nr.Parse(req.Newick)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *server) reroot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Newick   string   `json:"newick"`
		Outgroup []string `json:"outgroup"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, _ := s.reader("")
	t, err := nr.Parse(req.Newick)
	if err != nil {
		fail(w, err)
		return
	}
	rt, err := phylo.Reroot(t, req.Outgroup)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Newick string     `json:"newick"`
		Tree   *tree.Node `json:"tree"`
	}{newick.String(rt), rt})
}

func (s *server) distance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Newick string `json:"newick"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, _ := s.reader("")
	t, err := nr.Parse(req.Newick)
	if err != nil {
		fail(w, err)
		return
	}
	m, err := phylo.DistanceMatrix(t)
	if err != nil {
		fail(w, err)
		return
	}
	terms := m.Terms()
	d := make([][]float64, len(terms))
	for i := range terms {
		d[i] = make([]float64, len(terms))
		for j := range terms {
			d[i][j] = m.At(i, j)
		}
	}
	writeJSON(w, http.StatusOK, struct {
		Terms    []string    `json:"terms"`
		Distance [][]float64 `json:"distance"`
	}{terms, d})
}

func (s *server) compare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, _ := s.reader("")
	a, err := nr.Parse(req.A)
	if err != nil {
		fail(w, err)
		return
	}
	b, err := nr.Parse(req.B)
	if err != nil {
		fail(w, err)
		return
	}
	cmp, err := phylo.RobinsonFoulds(a, b)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Distance    int     `json:"distance"`
		MaxDistance int     `json:"max_distance"`
		Normalized  float64 `json:"normalized"`
		CommonTerms int     `json:"common_terms"`
	}{cmp.Distance, cmp.MaxDistance, cmp.Normalized, cmp.CommonTerms})
}

func (s *server) annotate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Newick string `json:"newick"`
		Counts []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"counts"`
		Strict bool `json:"strict"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, _ := s.reader("")
	t, err := nr.Parse(req.Newick)
	if err != nil {
		fail(w, err)
		return
	}

	counts := make(match.Counts, len(req.Counts))
	for _, c := range req.Counts {
		counts[c.Name] = c.Count
	}
	m := match.Default()
	if req.Strict {
		m = match.Matcher{}
	}
	writeJSON(w, http.StatusOK, phylo.Annotate(t, counts.Assign(t, m)))
}

func (s *server) layout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Newick     string  `json:"newick"`
		Mode       string  `json:"mode"`
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
		UseLengths bool    `json:"use_lengths"`
		NoReorder  bool    `json:"no_reorder"`
	}
	if !decode(w, r, &req) {
		return
	}
	nr, _ := s.reader("")
	t, err := nr.Parse(req.Newick)
	if err != nil {
		fail(w, err)
		return
	}

	opt := layout.Options{
		Width:      req.Width,
		Height:     req.Height,
		UseLengths: req.UseLengths,
		Reorder:    !req.NoReorder,
	}
	if opt.Width <= 0 {
		opt.Width = 800
	}
	if opt.Height <= 0 {
		opt.Height = 600
	}
	switch req.Mode {
	case "", "rect", "rectangular":
		opt.Mode = layout.Rectangular
	case "radial", "circular":
		opt.Mode = layout.Radial
	default:
		fail(w, fmt.Errorf("invalid layout mode: %q", req.Mode))
		return
	}

	d, err := layout.New(t, opt)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
