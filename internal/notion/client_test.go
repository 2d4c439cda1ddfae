package notion_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dialedbyh/internal/notion"
)

func TestQueryDatabase(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":"pg-1","properties":{}},{"id":"pg-2","properties":{}}],"has_more":false}`))
	}))
	defer srv.Close()

	c := notion.NewClient("secret-token")
	c.BaseURL = srv.URL

	q := notion.Query{
		Filter: notion.SelectEqualsFilter("Status", "Available"),
		Sorts:  notion.CreatedAscending(),
	}
	pages, err := c.QueryDatabase(context.Background(), "db-123", q)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/v1/databases/db-123/query" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("auth header: got %q", gotAuth)
	}
	if gotVersion == "" {
		t.Fatal("Notion-Version header missing")
	}
	if _, ok := gotBody["filter"]; !ok {
		t.Fatalf("filter missing from request body: %v", gotBody)
	}
	if _, ok := gotBody["sorts"]; !ok {
		t.Fatalf("sorts missing from request body: %v", gotBody)
	}

	if len(pages) != 2 || pages[0].ID != "pg-1" || pages[1].ID != "pg-2" {
		t.Fatalf("pages: got %+v", pages)
	}
}

func TestQueryDatabaseNoFilterOmitsField(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := notion.NewClient("tok")
	c.BaseURL = srv.URL
	if _, err := c.QueryDatabase(context.Background(), "db", notion.Query{Sorts: notion.CreatedAscending()}); err != nil {
		t.Fatal(err)
	}
	if _, ok := gotBody["filter"]; ok {
		t.Fatalf("unfiltered query must not send a filter: %v", gotBody)
	}
}

func TestQueryDatabaseUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"API token is invalid."}`))
	}))
	defer srv.Close()

	c := notion.NewClient("bad")
	c.BaseURL = srv.URL
	_, err := c.QueryDatabase(context.Background(), "db", notion.Query{})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "unauthorized") || !strings.Contains(err.Error(), "API token is invalid") {
		t.Fatalf("error should carry upstream detail, got: %v", err)
	}
}
