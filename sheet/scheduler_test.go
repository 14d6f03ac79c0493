package sheet

import "testing"

func TestFrameQueueFlushRunsInOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	q.Schedule(func() { got = append(got, 1) })
	q.Schedule(func() { got = append(got, 2) })
	q.Flush()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("flush order = %v, want [1 2]", got)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not drained, len = %d", q.Len())
	}
}

func TestFrameQueueScheduleDuringFlushWaitsForNextFrame(t *testing.T) {
	q := NewFrameQueue()
	ran := 0
	q.Schedule(func() {
		q.Schedule(func() { ran++ })
	})
	q.Flush()
	if ran != 0 {
		t.Fatalf("nested schedule ran in the same flush")
	}
	q.Flush()
	if ran != 1 {
		t.Fatalf("nested schedule ran %d times after second flush, want 1", ran)
	}
}

func TestFrameQueueIgnoresNil(t *testing.T) {
	q := NewFrameQueue()
	q.Schedule(nil)
	if q.Len() != 0 {
		t.Fatalf("nil func queued")
	}
	q.Flush()
}
