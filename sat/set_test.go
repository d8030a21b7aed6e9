package sat

import "testing"

func TestResetSet(t *testing.T) {
	var rs resetSet
	for i := 0; i < 4; i++ {
		rs.expand()
	}

	if rs.contains(2) {
		t.Fatalf("fresh set already contains 2")
	}

	rs.add(1)
	rs.add(2)
	if !rs.contains(1) || !rs.contains(2) {
		t.Fatalf("set does not contain added elements")
	}
	if rs.contains(3) {
		t.Fatalf("set contains an element never added")
	}

	rs.remove(1)
	if rs.contains(1) {
		t.Fatalf("removed element still reported as contained")
	}
	if !rs.contains(2) {
		t.Fatalf("remove affected an unrelated element")
	}

	rs.clear()
	if rs.contains(2) {
		t.Fatalf("clear() did not empty the set")
	}
}

func TestResetSetClearOverflow(t *testing.T) {
	var rs resetSet
	rs.expand()
	rs.addedTimestamp = 1<<32 - 1

	rs.add(0)
	rs.clear()

	if rs.contains(0) {
		t.Fatalf("clear() across a timestamp overflow did not empty the set")
	}
	rs.add(0)
	if !rs.contains(0) {
		t.Fatalf("set unusable after a timestamp overflow")
	}
}
