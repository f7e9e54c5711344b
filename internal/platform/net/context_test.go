package net_test

import (
	"context"
	"testing"

	pnet "github.com/simonljus/tidy-date/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both values", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "pt-BR")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.Locale(ctx); got != "pt-BR" {
			t.Fatalf("Locale got %q want %q", got, "pt-BR")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")
		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q", got)
		}
		if got := pnet.Locale(ctx); got != "" {
			t.Fatalf("Locale got %q want empty", got)
		}
	})

	t.Run("empty values keep the context", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both values are empty")
		}
		if pnet.RequestID(ctx) != "" || pnet.Locale(ctx) != "" {
			t.Fatalf("getters should be empty on a bare context")
		}
	})
}
