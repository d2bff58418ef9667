// Package server serves a directory tree over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/fsbox-cli/fsbox/internal/domain"
	"github.com/fsbox-cli/fsbox/internal/logger"
	"github.com/fsbox-cli/fsbox/internal/term"
)

// Options configures the file server.
type Options struct {
	Root    string
	Addr    string
	Listing bool
}

// Server exposes a directory tree over plain HTTP with optional
// directory listings.
type Server struct {
	root    string
	listing bool
	engine  *gin.Engine
	http    *http.Server
}

var listingTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html><head><title>Index of {{.Path}}</title>
<style>body{font-family:monospace;margin:2em}table{border-collapse:collapse}td{padding:2px 16px 2px 0}a{text-decoration:none}</style>
</head><body>
<h1>Index of {{.Path}}</h1>
<table>
{{if .Parent}}<tr><td><a href="{{.Parent}}">../</a></td><td></td><td></td></tr>{{end}}
{{range .Entries}}<tr><td><a href="{{.Href}}">{{.Name}}</a></td><td>{{.Size}}</td><td>{{.Modified}}</td></tr>
{{end}}</table>
</body></html>
`))

type listingEntry struct {
	Name     string
	Href     string
	Size     string
	Modified string
}

// New builds a server for opts.Root. The root must be an existing
// directory.
func New(opts Options) (*Server, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, domain.MapOSError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, root)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		root:    root,
		listing: opts.Listing,
		engine:  engine,
		http:    &http.Server{Addr: opts.Addr, Handler: engine},
	}
	engine.NoRoute(s.handle)
	return s, nil
}

// Handler returns the underlying HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	logger.Info("file server listening", "addr", s.http.Addr, "root", s.root)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handle(c *gin.Context) {
	target, ok := s.resolve(c.Request.URL.Path)
	if !ok {
		c.String(http.StatusForbidden, "forbidden")
		return
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			c.String(http.StatusNotFound, "not found")
		} else {
			c.String(http.StatusInternalServerError, "stat failed")
		}
		return
	}

	if info.IsDir() {
		// Prefer an index.html when present
		index := filepath.Join(target, "index.html")
		if fi, err := os.Stat(index); err == nil && !fi.IsDir() {
			s.serveFile(c, index)
			return
		}
		if s.listing {
			s.serveListing(c, target)
			return
		}
		c.String(http.StatusForbidden, "listing disabled")
		return
	}
	s.serveFile(c, target)
}

// resolve maps a URL path onto the served root, rejecting anything
// that would escape it.
func (s *Server) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	target := filepath.Join(s.root, filepath.FromSlash(clean))
	if target != s.root && !strings.HasPrefix(target, s.root+string(filepath.Separator)) {
		return "", false
	}
	return target, true
}

func (s *Server) serveFile(c *gin.Context, target string) {
	if ctype := detectContentType(target); ctype != "" {
		c.Header("Content-Type", ctype)
	}
	c.File(target)
}

func (s *Server) serveListing(c *gin.Context, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.String(http.StatusInternalServerError, "read failed")
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	urlPath := path.Clean("/" + c.Request.URL.Path)
	rows := make([]listingEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		name := e.Name()
		size := term.HumanSize(info.Size())
		if e.IsDir() {
			name += "/"
			size = "-"
		}
		rows = append(rows, listingEntry{
			Name:     name,
			Href:     path.Join(urlPath, e.Name()),
			Size:     size,
			Modified: info.ModTime().Format("2006-01-02 15:04"),
		})
	}

	parent := ""
	if urlPath != "/" {
		parent = path.Dir(urlPath)
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = listingTmpl.Execute(c.Writer, gin.H{
		"Path":    urlPath,
		"Parent":  parent,
		"Entries": rows,
	})
}

// detectContentType sniffs the file's content rather than trusting
// the extension alone.
func detectContentType(target string) string {
	mt, err := mimetype.DetectFile(target)
	if err != nil {
		return ""
	}
	return mt.String()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
