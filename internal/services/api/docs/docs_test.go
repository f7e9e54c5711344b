package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag/v2"
)

func TestDocIsRegisteredAndParses(t *testing.T) {
	raw, err := swag.ReadDoc("api")
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var spec struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if spec.Info.Title != "tidy-date API" || spec.Info.Version != "0.1.0" {
		t.Fatalf("info = %+v", spec.Info)
	}
	for _, p := range []string{"/v1/format/date", "/v1/format/range", "/v1/format/range-today", "/v1/format/type"} {
		if _, ok := spec.Paths[p]["post"]; !ok {
			t.Fatalf("missing POST %s", p)
		}
	}
	if _, ok := spec.Paths["/v1/meta/version"]["get"]; !ok {
		t.Fatalf("missing GET /v1/meta/version")
	}
}
