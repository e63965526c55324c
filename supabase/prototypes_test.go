package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prototype-creator/model"
	"prototype-creator/utils"
)

func testLogger(t *testing.T) *utils.Logger {
	t.Helper()
	logger, err := utils.NewLogger(t.TempDir() + "/test.log")
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-10-14T23:59:00Z", time.Date(2024, 10, 14, 23, 59, 0, 0, time.UTC)},
		{"2024-10-14T23:59:00+00:00", time.Date(2024, 10, 14, 23, 59, 0, 0, time.UTC)},
		{"2024-10-14T23:59:00.123Z", time.Date(2024, 10, 14, 23, 59, 0, 0, time.UTC)},
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, ok := parseTimestamp(tt.input)
		if !ok {
			t.Errorf("parseTimestamp(%q): unexpected failure", tt.input)
			continue
		}
		if got != tt.want.UnixMilli() {
			t.Errorf("parseTimestamp(%q) = %d, want %d", tt.input, got, tt.want.UnixMilli())
		}
	}
}

func TestParseTimestampMalformed(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-10-14", "2024-10-14Tgarbage", "T23:59:00Z"} {
		if _, ok := parseTimestamp(input); ok {
			t.Errorf("parseTimestamp(%q): expected failure", input)
		}
	}
}

func TestToDomainMalformedTimestampFallsBackToNow(t *testing.T) {
	c := NewClient("http://localhost", "key", testLogger(t))

	before := time.Now().UnixMilli()
	p := prototypeRecord{ShortID: "abc", CreatedAt: "garbage"}.toDomain(c)
	after := time.Now().UnixMilli()

	if p.CreatedAt < before || p.CreatedAt > after {
		t.Errorf("expected created_at near now, got %d (window %d..%d)", p.CreatedAt, before, after)
	}
}

func TestToDomainIdentifierFallbacks(t *testing.T) {
	c := NewClient("http://localhost", "key", testLogger(t))
	num := 42

	tests := []struct {
		name     string
		record   prototypeRecord
		wantID   string
		wantName string
	}{
		{"short id wins", prototypeRecord{ID: &num, ShortID: "abc", AppName: "My App"}, "abc", "My App"},
		{"numeric id fallback", prototypeRecord{ID: &num}, "42", "42"},
		{"name falls back to short id", prototypeRecord{ShortID: "abc"}, "abc", "abc"},
		{"empty record", prototypeRecord{}, "", "Unknown"},
	}

	for _, tt := range tests {
		p := tt.record.toDomain(c)
		if p.ID != tt.wantID {
			t.Errorf("%s: id = %q, want %q", tt.name, p.ID, tt.wantID)
		}
		if p.Name != tt.wantName {
			t.Errorf("%s: name = %q, want %q", tt.name, p.Name, tt.wantName)
		}
	}
}

func TestListPrototypesPreservesBackendOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("order") != "created_at.desc" {
			t.Errorf("expected order=created_at.desc, got %q", r.URL.Query().Get("order"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"short_id":"newer","app_name":"Newer","created_at":"2024-06-01T00:00:00Z"},
			{"short_id":"older","app_name":"Older","created_at":"2024-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", testLogger(t))
	prototypes, err := c.ListPrototypes(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(prototypes) != 2 {
		t.Fatalf("expected 2 prototypes, got %d", len(prototypes))
	}
	if prototypes[0].ID != "newer" || prototypes[1].ID != "older" {
		t.Errorf("backend order not preserved: got %s, %s", prototypes[0].ID, prototypes[1].ID)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if prototypes[0].CreatedAt != want {
		t.Errorf("created_at = %d, want %d", prototypes[0].CreatedAt, want)
	}
}

func TestGetPrototypeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", testLogger(t))
	_, err := c.GetPrototype(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for zero rows")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSavePrototypeVerbSelection(t *testing.T) {
	var gotMethod, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"short_id":"abc","app_name":"Saved","created_at":"2024-01-01T00:00:00Z"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", testLogger(t))

	// Empty identifier: create -> POST
	if _, err := c.SavePrototype(context.Background(), model.Prototype{Name: "Saved"}); err != nil {
		t.Fatalf("save (create): %v", err)
	}
	if gotMethod != http.MethodPost || gotQuery != "" {
		t.Errorf("create: got %s %q, want POST with no filter", gotMethod, gotQuery)
	}

	// Non-empty identifier: update -> PATCH filtered by short_id
	if _, err := c.SavePrototype(context.Background(), model.Prototype{ID: "abc", Name: "Saved"}); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	if gotMethod != http.MethodPatch || gotQuery != "short_id=eq.abc" {
		t.Errorf("update: got %s %q, want PATCH short_id=eq.abc", gotMethod, gotQuery)
	}
}

func TestExecuteSendsAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "secret" {
			t.Errorf("missing apikey header")
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("missing Prefer header")
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", testLogger(t))
	if _, err := c.ListPrototypes(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestExecuteNonSuccessEmbedsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"permission denied"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", testLogger(t))
	_, err := c.ListPrototypes(context.Background())
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("error should embed status and body, got: %v", err)
	}
}
