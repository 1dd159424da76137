package observability

import (
	"context"
	"testing"
	"time"
)

type testBuildHooks struct {
	builds  int
	renders int
}

func (h *testBuildHooks) OnBuildStart(context.Context, string, int) { h.builds++ }
func (h *testBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
}
func (h *testBuildHooks) OnValidateComplete(context.Context, int, time.Duration, error) {}
func (h *testBuildHooks) OnRenderStart(context.Context, string)                         { h.renders++ }
func (h *testBuildHooks) OnRenderComplete(context.Context, string, time.Duration, error) {
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBuildHooks{}
	b.OnBuildStart(ctx, "divisor", 999)
	b.OnBuildComplete(ctx, "divisor", 999, time.Second, nil)
	b.OnValidateComplete(ctx, 999, time.Second, nil)
	b.OnRenderStart(ctx, "svg")
	b.OnRenderComplete(ctx, "svg", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "png")
	c.OnCacheSet(ctx, "svg", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	custom := &testBuildHooks{}
	SetBuildHooks(custom)
	Build().OnBuildStart(context.Background(), "divisor", 10)
	Build().OnRenderStart(context.Background(), "svg")
	if custom.builds != 1 || custom.renders != 1 {
		t.Errorf("custom hooks not invoked: builds=%d renders=%d", custom.builds, custom.renders)
	}

	// Nil registrations are ignored.
	SetBuildHooks(nil)
	if _, ok := Build().(*testBuildHooks); !ok {
		t.Error("SetBuildHooks(nil) should keep the previous hooks")
	}

	Reset()
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore noop hooks")
	}
}
