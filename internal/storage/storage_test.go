package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rovira-studio/atelier/internal/viewstate"
)

func TestStateStore(t *testing.T) {
	store := New()

	if _, ok := store.Get("missing"); ok {
		t.Error("Expected miss for unknown visitor")
	}

	state := viewstate.New("ca")
	store.Set("v1", state)

	got, ok := store.Get("v1")
	if !ok || got != state {
		t.Error("Expected stored state back")
	}

	store.Delete("v1")
	if _, ok := store.Get("v1"); ok {
		t.Error("Expected miss after delete")
	}
}

func TestStateStoreConcurrent(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("visitor-%d", i)
			store.Set(id, viewstate.New("ca"))
			if _, ok := store.Get(id); !ok {
				t.Errorf("Expected state for %s", id)
			}
		}(i)
	}
	wg.Wait()
}
