package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSessionHooks{}
	s.OnSave(ctx, 3, 1, nil)
	s.OnRestore(ctx, "storage", 3, 0, nil)
	s.OnRender(ctx, 10, 3, time.Millisecond)
	s.OnResync(ctx, 1, 2, 3)

	st := NoopStorageHooks{}
	st.OnGet(ctx, "file", "graph-dep-config", true, time.Millisecond, nil)
	st.OnSet(ctx, "file", "graph-dep-config", 128, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}
	if _, ok := Storage().(NoopStorageHooks); !ok {
		t.Error("Storage() should return NoopStorageHooks by default")
	}

	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	customStorage := &testStorageHooks{}
	SetStorageHooks(customStorage)
	if Storage() != customStorage {
		t.Error("SetStorageHooks should set custom hooks")
	}

	SetSessionHooks(nil)
	if Session() != customSession {
		t.Error("SetSessionHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset should restore NoopSessionHooks")
	}
	if _, ok := Storage().(NoopStorageHooks); !ok {
		t.Error("Reset should restore NoopStorageHooks")
	}
}

type testSessionHooks struct{ NoopSessionHooks }
type testStorageHooks struct{ NoopStorageHooks }
