package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paiv/icfpc2012/internal/core"
)

func TestPublishDropsStaleUpdateWithoutBlocking(t *testing.T) {
	s := NewServer(":0")
	m, state := core.ReadMap("#####\n#R  #\n#####\n")

	s.Publish(m, state, 1)
	s.Publish(m, state, 2)

	select {
	case u := <-s.updates:
		if u.NodesExplored != 2 {
			t.Fatalf("expected the latest update to win, got %+v", u)
		}
	default:
		t.Fatal("expected a pending update")
	}
}

func TestServeIndexReturnsHTML(t *testing.T) {
	s := NewServer(":0")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.serveIndex(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected a non-empty body")
	}
}

func TestServeIndexRejectsOtherPaths(t *testing.T) {
	s := NewServer(":0")
	req := httptest.NewRequest(http.MethodGet, "/other", nil)
	rec := httptest.NewRecorder()

	s.serveIndex(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
