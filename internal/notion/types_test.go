package notion_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"dialedbyh/internal/notion"
)

func numProp(v float64) notion.Property {
	return notion.Property{Type: "number", Number: &v}
}

func TestPlainText(t *testing.T) {
	title := notion.Property{Type: "title", Title: []notion.RichText{
		{PlainText: "Rolex "},
		{PlainText: "Submariner"},
	}}
	if got := title.PlainText(); got != "Rolex Submariner" {
		t.Fatalf("title: want %q, got %q", "Rolex Submariner", got)
	}

	rich := notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: "Unpolished"}}}
	if got := rich.PlainText(); got != "Unpolished" {
		t.Fatalf("rich_text: got %q", got)
	}

	sel := notion.Property{Type: "select", Select: &notion.Option{Name: "Excellent"}}
	if got := sel.PlainText(); got != "Excellent" {
		t.Fatalf("select: got %q", got)
	}

	// Empty select cell: type tag present, no option chosen.
	if got := (notion.Property{Type: "select"}).PlainText(); got != "" {
		t.Fatalf("empty select: got %q", got)
	}

	// Unrecognized types and absent properties degrade to "".
	if got := (notion.Property{Type: "rollup"}).PlainText(); got != "" {
		t.Fatalf("unknown type: got %q", got)
	}
	var absent notion.Property
	if got := absent.PlainText(); got != "" {
		t.Fatalf("absent: got %q", got)
	}
}

func TestNumberValueDistinguishesZeroFromAbsent(t *testing.T) {
	if v, ok := numProp(0).NumberValue(); !ok || v != 0 {
		t.Fatalf("stored zero must report (0,true), got (%v,%v)", v, ok)
	}
	if _, ok := (notion.Property{Type: "number"}).NumberValue(); ok {
		t.Fatal("empty number cell must report absent")
	}
	if _, ok := (notion.Property{}).NumberValue(); ok {
		t.Fatal("absent property must report absent")
	}
	if v, ok := numProp(40.5).NumberValue(); !ok || v != 40.5 {
		t.Fatalf("got (%v,%v)", v, ok)
	}
}

func TestBool(t *testing.T) {
	if !(notion.Property{Type: "checkbox", Checkbox: true}).Bool() {
		t.Fatal("checked checkbox must be true")
	}
	if (notion.Property{Type: "checkbox"}).Bool() {
		t.Fatal("unchecked checkbox must be false")
	}
	if (notion.Property{Type: "title", Checkbox: true}).Bool() {
		t.Fatal("non-checkbox types must be false")
	}
}

func TestFileURLs(t *testing.T) {
	p := notion.Property{Type: "files", Files: []notion.FileRef{
		{File: &notion.FileURL{URL: "a"}},
		{External: &notion.FileURL{URL: "b"}},
		{}, // neither variant resolves; dropped
	}}
	got := p.FileURLs()
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("want [a b], got %v", got)
	}

	// Uploaded file wins over an external link on the same attachment.
	both := notion.Property{Type: "files", Files: []notion.FileRef{
		{File: &notion.FileURL{URL: "direct"}, External: &notion.FileURL{URL: "ext"}},
	}}
	if got := both.FileURLs(); len(got) != 1 || got[0] != "direct" {
		t.Fatalf("want [direct], got %v", got)
	}

	var absent notion.Property
	if got := absent.FileURLs(); len(got) != 0 {
		t.Fatalf("absent property: want empty, got %v", got)
	}
}

func TestPageDecoding(t *testing.T) {
	raw := `{
	  "id": "pg-1",
	  "created_time": "2024-03-01T00:00:00.000Z",
	  "properties": {
	    "Brand": {"type":"rich_text","rich_text":[{"plain_text":"Omega"}]},
	    "Asking Price": {"type":"number","number":0},
	    "Box & Papers": {"type":"checkbox","checkbox":true}
	  }
	}`
	var pg notion.Page
	if err := json.Unmarshal([]byte(raw), &pg); err != nil {
		t.Fatal(err)
	}
	if pg.ID != "pg-1" {
		t.Fatalf("id: got %q", pg.ID)
	}
	if got := pg.Properties["Brand"].PlainText(); got != "Omega" {
		t.Fatalf("brand: got %q", got)
	}
	if v, ok := pg.Properties["Asking Price"].NumberValue(); !ok || v != 0 {
		t.Fatalf("a JSON zero must decode as present, got (%v,%v)", v, ok)
	}
	if !pg.Properties["Box & Papers"].Bool() {
		t.Fatal("checkbox lost in decoding")
	}
}
