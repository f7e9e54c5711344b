package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonljus/tidy-date/dateformat"
	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
	"github.com/simonljus/tidy-date/internal/platform/net/middleware"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

func newAPI(t *testing.T) *httptest.Server { return newAPIWith(t, nil) }

func newAPIWith(t *testing.T, tweak func(*Options)) *httptest.Server {
	t.Helper()
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID(), middleware.RecoverJSON)
	opt := Options{
		Metrics:       prometheus.NewRegistry(),
		Defaults:      dateformat.DefaultConfig(),
		DefaultLocale: "en",
	}
	if tweak != nil {
		tweak(&opt)
	}
	err := Mount(phttp.AdaptChi(mux), opt)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()
	var env envelope
	body, _ := io.ReadAll(res.Body)
	_ = json.Unmarshal(body, &env)
	return res, env
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, envelope) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

func TestMountRejectsBadDefaults(t *testing.T) {
	bad := dateformat.DefaultConfig()
	bad.DateResolution = dateformat.Resolution(42)
	if err := Mount(phttp.AdaptChi(chi.NewRouter()), Options{Defaults: bad}); err == nil {
		t.Fatalf("expected error for invalid defaults")
	}
}

func TestFormatRangeEndpoint(t *testing.T) {
	srv := newAPI(t)
	res, env := post(t, srv, "/v1/format/range",
		`{"from":"2023-08-01T00:00:00Z","to":"2023-08-12T23:59:59.999Z","locale":"en-GB"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, env.Error)
	}
	var out struct {
		Text   string `json:"text"`
		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Text != "1\u201312 Aug 2023" || out.Locale != "en-GB" {
		t.Fatalf("data = %+v", out)
	}
	if env.RequestID == "" || res.Header.Get("X-Request-ID") != env.RequestID {
		t.Fatalf("request id not propagated: %q", env.RequestID)
	}
}

func TestAcceptLanguagePicksLocale(t *testing.T) {
	srv := newAPI(t)
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/format/type",
		strings.NewReader(`{"from":"2023-01-01T00:00:00Z","to":"2023-12-31T23:59:59.999Z"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	res, env := do(t, req)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, env.Error)
	}
	var out struct {
		RangeType string `json:"range_type"`
	}
	_ = json.Unmarshal(env.Data, &out)
	if out.RangeType != "fullYears" {
		t.Fatalf("range type = %q", out.RangeType)
	}
}

func TestFormatErrors(t *testing.T) {
	srv := newAPI(t)
	cases := []struct {
		name, path, body string
		status           int
		field            string
	}{
		{"missing end", "/v1/format/range", `{"from":"2023-08-01T00:00:00Z"}`, http.StatusBadRequest, ""},
		{"unknown field", "/v1/format/date", `{"date":"2023-08-01T00:00:00Z","colour":"red"}`, http.StatusBadRequest, ""},
		{"bad resolution", "/v1/format/date", `{"date":"2023-08-01T00:00:00Z","display_resolution":"week"}`, http.StatusBadRequest, ""},
		{"unknown zone", "/v1/format/date", `{"date":"2023-08-01T00:00:00Z","time_zone":"Mars/Olympus"}`, http.StatusUnprocessableEntity, "time_zone"},
		{"reversed", "/v1/format/range-today", `{"from":"2023-09-01T00:00:00Z","to":"2023-08-01T00:00:00Z"}`, http.StatusUnprocessableEntity, "from"},
		{
			"exclusive end before start", "/v1/format/range",
			`{"from":"2023-01-01T00:00:00Z","to":"2023-01-01T00:00:00Z","date_resolution":"day","boundary":"exclusive"}`,
			http.StatusUnprocessableEntity, "to",
		},
	}
	for _, tc := range cases {
		res, env := post(t, srv, tc.path, tc.body)
		if res.StatusCode != tc.status {
			t.Fatalf("%s: status = %d, want %d (%s)", tc.name, res.StatusCode, tc.status, env.Error)
		}
		if tc.field != "" && env.Field != tc.field {
			t.Fatalf("%s: field = %q, want %q", tc.name, env.Field, tc.field)
		}
	}
}

func TestFormatRequiresJSON(t *testing.T) {
	srv := newAPI(t)
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/format/date", strings.NewReader(`date=today`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, _ := do(t, req)
	if res.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", res.StatusCode)
	}
}

func TestOpsEndpoints(t *testing.T) {
	srv := newAPI(t)

	res, err := http.Get(srv.URL + "/health")
	if err != nil || res.StatusCode != http.StatusOK {
		t.Fatalf("health = %v %v", res, err)
	}
	res.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/v1/meta/locales", nil)
	res, env := do(t, req)
	if res.StatusCode != http.StatusOK || !strings.Contains(string(env.Data), `"pt-BR"`) {
		t.Fatalf("locales = %d %s", res.StatusCode, env.Data)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/v1/meta/version", nil)
	res, env = do(t, req)
	if res.StatusCode != http.StatusOK || !strings.Contains(string(env.Data), `"tidydate"`) {
		t.Fatalf("version = %d %s", res.StatusCode, env.Data)
	}

	// profiler and docs are off unless asked for
	for _, p := range []string{"/debug/pprof/", "/docs/doc.json"} {
		res, err = http.Get(srv.URL + p)
		if err != nil || res.StatusCode != http.StatusNotFound {
			t.Fatalf("%s = %v %v", p, res, err)
		}
		res.Body.Close()
	}

	post(t, srv, "/v1/format/range", `{"from":"2023-08-01T00:00:00Z","to":"2023-08-12T23:59:59.999Z"}`)
	res, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	for _, want := range []string{`tidydate_format_total{op="range",outcome="ok"} 1`, `tidydate_http_requests_total`} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("metrics missing %q", want)
		}
	}
}

func TestSwaggerDocs(t *testing.T) {
	srv := newAPIWith(t, func(o *Options) { o.EnableSwagger = true })
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	res, err := client.Get(srv.URL + "/docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusPermanentRedirect || res.Header.Get("Location") != "/docs/" {
		t.Fatalf("docs = %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	res, err = client.Get(srv.URL + "/docs/doc.json")
	if err != nil {
		t.Fatalf("doc.json: %v", err)
	}
	defer res.Body.Close()
	var spec struct {
		OpenAPI string `json:"openapi"`
	}
	if err := json.NewDecoder(res.Body).Decode(&spec); err != nil || res.StatusCode != http.StatusOK {
		t.Fatalf("doc.json = %d %v", res.StatusCode, err)
	}
	if spec.OpenAPI != "3.0.3" {
		t.Fatalf("openapi = %q", spec.OpenAPI)
	}
}
