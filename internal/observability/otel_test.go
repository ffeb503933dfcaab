package observability

import (
	"context"
	"testing"

	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc ,bogus, x=, tenant=lms ")
	if len(got) != 2 || got["api-key"] != "abc" || got["tenant"] != "lms" {
		t.Fatalf("ParseHeaders=%v", got)
	}
	if ParseHeaders("   ") != nil {
		t.Fatalf("blank input should give nil")
	}
}

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.3: 0.3, 1: 1, 7: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v)=%v want %v", in, got, want)
		}
	}
}

func TestInitOTelDisabledReturnsNoopShutdown(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.NewNop(), OtelConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("shutdown func must not be nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
