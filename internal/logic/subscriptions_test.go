package logic

import (
	"strconv"
	"sync"
	"testing"
)

func TestSubscriptionList_AppendOrderAndDuplicates(t *testing.T) {
	subs := NewSubscriptionList()

	subs.Add("1", "2")
	subs.Add("1", "3")
	snapshot := subs.Add("1", "2")

	want := []string{"2", "3", "2"}
	got := snapshot["1"]
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (duplicates are permitted)", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("targets[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubscriptionList_SnapshotIsACopy(t *testing.T) {
	subs := NewSubscriptionList()
	subs.Add("1", "2")

	snapshot := subs.Snapshot()
	snapshot["1"][0] = "tampered"
	snapshot["9"] = []string{"x"}

	fresh := subs.Snapshot()
	if fresh["1"][0] != "2" {
		t.Error("mutating a snapshot leaked into the list")
	}
	if _, ok := fresh["9"]; ok {
		t.Error("inserting into a snapshot leaked into the list")
	}
}

func TestSubscriptionList_ConcurrentAdds(t *testing.T) {
	subs := NewSubscriptionList()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			subs.Add("417817047", strconv.Itoa(n))
		}(i)
	}
	wg.Wait()

	if got := len(subs.Targets("417817047")); got != 50 {
		t.Errorf("len = %d, want 50 with no lost updates", got)
	}
}
