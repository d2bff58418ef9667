package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fsbox-cli/fsbox/internal/testutil"
)

func newTestServer(t *testing.T, listing bool) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	testutil.MakeTree(t, dir, map[string]string{
		"hello.txt":    "hello over http",
		"sub/page.txt": "nested",
		"empty/":       "",
	})
	s, err := New(Options{Root: dir, Addr: "127.0.0.1:0", Listing: listing})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServeFile(t *testing.T) {
	s, _ := newTestServer(t, false)

	rec := get(t, s, "/hello.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "hello over http" {
		t.Errorf("body = %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
}

func TestServeNestedFile(t *testing.T) {
	s, _ := newTestServer(t, false)
	rec := get(t, s, "/sub/page.txt")
	if rec.Code != http.StatusOK || rec.Body.String() != "nested" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t, false)
	if rec := get(t, s, "/missing.txt"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDirectoryListing(t *testing.T) {
	s, _ := newTestServer(t, true)
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"hello.txt", "sub/", "empty/"} {
		if !strings.Contains(body, want) {
			t.Errorf("listing missing %q", want)
		}
	}
}

func TestListingDisabled(t *testing.T) {
	s, _ := newTestServer(t, false)
	if rec := get(t, s, "/"); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestEscapeRejected(t *testing.T) {
	s, _ := newTestServer(t, true)
	// Encoded traversal that path.Clean cannot be allowed to resolve
	// outside the root.
	req := httptest.NewRequest(http.MethodGet, "/static", nil)
	req.URL.Path = "/../../etc/passwd"
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), "root:") {
		t.Fatal("path traversal escaped the served root")
	}
}

func TestIndexHTMLPreferred(t *testing.T) {
	s, dir := newTestServer(t, true)
	testutil.CreateTestFile(t, dir, "index.html", []byte("<h1>home</h1>"))
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "home") {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestNewRejectsFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTestFile(t, dir, "f.txt", []byte("x"))
	if _, err := New(Options{Root: path, Addr: ":0"}); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}
