package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
)

func TestGetRequestID_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), RequestIDKey, "abc"))

	if got := GetRequestID(req); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
}

func TestGetRequestID_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req); got != "" {
		t.Errorf("expected empty ID, got %q", got)
	}
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec

	if err := RequestIDMiddleware()(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID in %s, got %q", RequestIDHeader, id)
	}
	if got := GetRequestID(e.Request); got != id {
		t.Errorf("context ID %q does not match header %q", got, id)
	}
}

func TestRequestIDMiddleware_ReusesValidIncomingID(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec

	if err := RequestIDMiddleware()(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("expected incoming ID %q, got %q", incoming, got)
	}
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec

	if err := RequestIDMiddleware()(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	got := rec.Header().Get(RequestIDHeader)
	if got == "<script>" {
		t.Fatal("malformed incoming ID was echoed back")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected a generated UUID, got %q", got)
	}
}
