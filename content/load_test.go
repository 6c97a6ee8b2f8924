package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromHTTP(t *testing.T) {
	doc := Default()
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), nil)
	got, err := loader.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if got.Site.Name != doc.Site.Name {
		t.Errorf("Expected site name %q, got %q", doc.Site.Name, got.Site.Name)
	}
	if len(got.Stats) != len(doc.Stats) {
		t.Errorf("Expected %d stats, got %d", len(doc.Stats), len(got.Stats))
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), nil)
	_, err := loader.Load(context.Background(), srv.URL)
	if !errors.Is(err, ErrSource) {
		t.Errorf("Expected ErrSource for 404, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"site": {`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), nil)
	_, err := loader.Load(context.Background(), srv.URL)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode for malformed payload, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	doc := Default()
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewLoader(nil, nil)
	got, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if got.Hero.Title != doc.Hero.Title {
		t.Errorf("Expected hero title %q, got %q", doc.Hero.Title, got.Hero.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(nil, nil)
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrSource) {
		t.Errorf("Expected ErrSource for missing file, got %v", err)
	}
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"site":{"name":""},"hero":{"title":""}}`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), nil)
	_, err := loader.Load(context.Background(), srv.URL)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	doc := &Document{
		Stats:   []Stat{{Number: -1}},
		Events:  []Event{{Date: "not-a-date"}},
		Contact: []ContactItem{{Icon: "✉"}},
	}

	err := doc.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"site.name", "hero.title", "stats[0]", "events[0]", "contact[0]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %s, got %q", want, msg)
		}
	}
}

func TestDefaultDocumentValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default document to validate, got %v", err)
	}
}

func TestStatNumberAcceptsBothForms(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{"Bare number", `{"number":42,"suffix":"%","label":"Growth"}`, 42, false},
		{"Quoted number", `{"number":"42","suffix":"%","label":"Growth"}`, 42, false},
		{"Quoted with spaces", `{"number":" 1200 ","suffix":"+","label":"Users"}`, 1200, false},
		{"Missing number", `{"suffix":"%","label":"Growth"}`, 0, false},
		{"Non-numeric string", `{"number":"many","label":"Growth"}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Stat
			err := json.Unmarshal([]byte(tt.payload), &s)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected decode error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected decode to succeed, got %v", err)
			}
			if s.Number != tt.want {
				t.Errorf("Expected number %d, got %d", tt.want, s.Number)
			}
		})
	}
}

func TestLoadQuotedStatNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"site": {"name": "demo", "nav": [{"label": "Home", "target": "hero"}]},
			"hero": {"title": "Demo", "tagline": "t"},
			"stats": [{"number": "42", "suffix": "%", "label": "Growth"}]
		}`))
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), nil)
	got, err := loader.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if len(got.Stats) != 1 || got.Stats[0].Number != 42 || got.Stats[0].Suffix != "%" {
		t.Errorf("Expected one 42%% stat, got %+v", got.Stats)
	}
	if got.Stats[0].Label != "Growth" {
		t.Errorf("Expected label Growth, got %q", got.Stats[0].Label)
	}
}

func TestStatRender(t *testing.T) {
	tests := []struct {
		name  string
		stat  Stat
		value int
		want  string
	}{
		{"Percent start", Stat{Number: 42, Suffix: "%"}, 0, "0%"},
		{"Percent done", Stat{Number: 42, Suffix: "%"}, 42, "42%"},
		{"Plus suffix", Stat{Number: 12000, Suffix: "+"}, 7345, "7345+"},
		{"Bare number", Stat{Number: 38}, 38, "38"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stat.Render(tt.value); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEventDayMonth(t *testing.T) {
	day, month := Event{Date: "2026-09-18"}.DayMonth()
	if day != "18" {
		t.Errorf("Expected day 18, got %q", day)
	}
	if month != "SEP" {
		t.Errorf("Expected month SEP, got %q", month)
	}

	day, month = Event{Date: "soon"}.DayMonth()
	if day != "--" || month != "---" {
		t.Errorf("Expected placeholders for bad date, got %q %q", day, month)
	}
}
