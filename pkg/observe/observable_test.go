package observe

import "testing"

func TestObservableValue(t *testing.T) {
	obs := NewObservable(42)

	if obs.Value() != 42 {
		t.Errorf("expected 42, got %d", obs.Value())
	}
}

func TestObservableSetNotifies(t *testing.T) {
	obs := NewObservable(0)
	var seen []int

	obs.AddListener(func(v int) { seen = append(seen, v) })
	obs.Set(1)
	obs.Set(1)
	obs.Set(2)

	if len(seen) != 3 {
		t.Fatalf("expected notification on every Set, got %v", seen)
	}
	if obs.Value() != 2 {
		t.Errorf("expected 2, got %d", obs.Value())
	}
}

func TestObservableUpdate(t *testing.T) {
	obs := NewObservable(10)
	var seen []int
	obs.AddListener(func(v int) { seen = append(seen, v) })

	obs.Update(func(v int) int { return v + 5 })

	if obs.Value() != 15 {
		t.Errorf("expected 15, got %d", obs.Value())
	}
	if len(seen) != 1 || seen[0] != 15 {
		t.Errorf("expected listener to see 15, got %v", seen)
	}
}

func TestObservableWithEquality(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	obs := NewObservableWithEquality(user{ID: 1, Name: "Alice"}, func(a, b user) bool {
		return a.ID == b.ID
	})
	calls := 0
	obs.AddListener(func(user) { calls++ })

	obs.Set(user{ID: 1, Name: "Alicia"}) // same ID, no notification
	obs.Set(user{ID: 2, Name: "Bob"})

	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
	if obs.Value().Name != "Bob" {
		t.Errorf("expected the silent Set to still store the value, got %q", obs.Value().Name)
	}
}

func TestObservableUnsubscribe(t *testing.T) {
	obs := NewObservable(0)
	calls := 0

	unsub := obs.AddListener(func(int) { calls++ })
	obs.Set(1)
	unsub()
	obs.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestObservableDispose(t *testing.T) {
	obs := NewObservable(7)
	obs.AddListener(func(int) { t.Error("listener must not run after dispose") })

	obs.Dispose()
	obs.Set(8)

	if obs.Value() != 8 {
		t.Errorf("expected value to stay readable after dispose, got %d", obs.Value())
	}
}
