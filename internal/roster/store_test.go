package roster

import (
	"reflect"
	"testing"
)

func TestInitialSeedsThreeEntries(t *testing.T) {
	store := Initial()

	want := []string{"Tanu", "Tina", "Tono"}
	if got := store.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Initial().Names() = %v, want %v", got, want)
	}
}

func TestAppendAddsToEnd(t *testing.T) {
	store := Initial()

	if !store.Append("Alex") {
		t.Fatalf("Append(%q) = false, want true", "Alex")
	}

	want := []string{"Tanu", "Tina", "Tono", "Alex"}
	if got := store.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestAppendIgnoresBlankNames(t *testing.T) {
	store := Initial()
	before := store.Entries()

	for _, name := range []string{"", "   ", "\t\n", "　"} {
		if store.Append(name) {
			t.Fatalf("Append(%q) = true, want false", name)
		}
	}

	if got := store.Entries(); !reflect.DeepEqual(got, before) {
		t.Fatalf("Entries() after blank appends = %v, want %v", got, before)
	}
}

func TestAppendKeepsSurroundingWhitespace(t *testing.T) {
	store := NewStore()
	store.Append("  Alex ")

	if got := store.Names(); len(got) != 1 || got[0] != "  Alex " {
		t.Fatalf("Names() = %q, want [\"  Alex \"]", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	store := Initial()

	snapshot := store.Entries()
	snapshot[0].Name = "changed"

	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}
	if store.Names()[0] != "Tanu" {
		t.Fatalf("first name = %q, want %q", store.Names()[0], "Tanu")
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	store := Initial()

	var calls [][]Entry
	unsubscribe := store.Subscribe(func(entries []Entry) {
		calls = append(calls, entries)
	})

	store.Append("Alex")
	store.Append("  ")

	if len(calls) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(calls))
	}
	if n := len(calls[0]); n != 4 || calls[0][3].Name != "Alex" {
		t.Fatalf("snapshot = %v, want four entries ending in Alex", calls[0])
	}

	unsubscribe()
	store.Append("Bo")
	if len(calls) != 1 {
		t.Fatalf("subscriber called after unsubscribe: %d calls", len(calls))
	}
}

func TestSubscribersRunInOrder(t *testing.T) {
	store := NewStore()

	var order []string
	store.Subscribe(func([]Entry) { order = append(order, "first") })
	store.Subscribe(func([]Entry) { order = append(order, "second") })

	store.Append("Alex")

	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}
