package modkit

import (
	"net/http"
	"testing"

	phttp "github.com/simonljus/tidy-date/internal/platform/net/http"
)

func TestWithNameAndPrefix(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithName("format")(&c)
	WithPrefix("/format")(&c)
	if c.name != "format" || c.prefix != "/format" {
		t.Fatalf("got name=%q prefix=%q", c.name, c.prefix)
	}
}

func TestWithMiddlewares_AccumulatesAndOrder(t *testing.T) {
	t.Parallel()

	log := []string{}
	mw := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log = append(log, tag)
				if next != nil {
					next.ServeHTTP(w, r)
				}
			})
		}
	}

	var c buildCfg
	WithMiddlewares(mw("a"), mw("b"))(&c)
	WithMiddlewares(mw("c"))(&c)

	if len(c.mw) != 3 {
		t.Fatalf("expected 3 middlewares got=%d", len(c.mw))
	}

	// the first added should run first
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	want := []string{"a", "b", "c"}
	if len(log) != len(want) {
		t.Fatalf("unexpected call count got=%d want=%d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("middleware order mismatch at %d: got=%q want=%q", i, log[i], want[i])
		}
	}
}

func TestWithRegister(t *testing.T) {
	t.Parallel()
	hits := 0
	var c buildCfg
	WithRegister(func(phttp.Router) { hits++ })(&c)
	c.register(nil)
	if hits != 1 {
		t.Fatalf("register hits = %d", hits)
	}
}
