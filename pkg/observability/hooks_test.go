package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerateHooks{}
	g.OnGenerateStart(ctx, "grid", "esparso_1.txt")
	g.OnGenerateComplete(ctx, "grid", "esparso_1.txt", 360, time.Millisecond, nil)

	w := NoopWriteHooks{}
	w.OnWriteComplete(ctx, "esparso_1.txt", 2048, time.Millisecond, nil)
	w.OnWriteComplete(ctx, "denso_1.txt", 0, time.Millisecond, errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Generate() should return NoopGenerateHooks by default")
	}
	if _, ok := Write().(NoopWriteHooks); !ok {
		t.Error("Write() should return NoopWriteHooks by default")
	}

	customGenerate := &testGenerateHooks{}
	SetGenerateHooks(customGenerate)
	if Generate() != customGenerate {
		t.Error("SetGenerateHooks should set custom hooks")
	}

	customWrite := &testWriteHooks{}
	SetWriteHooks(customWrite)
	if Write() != customWrite {
		t.Error("SetWriteHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Reset() should restore NoopGenerateHooks")
	}
	if _, ok := Write().(NoopWriteHooks); !ok {
		t.Error("Reset() should restore NoopWriteHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGenerateHooks{}
	SetGenerateHooks(custom)
	SetGenerateHooks(nil)
	if Generate() != custom {
		t.Error("SetGenerateHooks(nil) should be ignored")
	}

	SetWriteHooks(nil)
	if _, ok := Write().(NoopWriteHooks); !ok {
		t.Error("SetWriteHooks(nil) should be ignored")
	}
}

// Test implementations
type testGenerateHooks struct{ NoopGenerateHooks }
type testWriteHooks struct{ NoopWriteHooks }
