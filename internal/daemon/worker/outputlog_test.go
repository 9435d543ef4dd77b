package worker

import (
	"fmt"
	"sync"
	"testing"
)

func TestOutputLogEviction(t *testing.T) {
	o := NewOutputLog(DefaultOutputCapacity)
	for i := 0; i < DefaultOutputCapacity+1; i++ {
		o.Append(fmt.Sprintf("line %d", i))
	}

	if o.Len() != DefaultOutputCapacity {
		t.Fatalf("Len() = %d, want %d", o.Len(), DefaultOutputCapacity)
	}
	lines := o.Lines()
	if lines[0] != "line 1" {
		t.Errorf("oldest line = %q, want %q", lines[0], "line 1")
	}
	if last := lines[len(lines)-1]; last != fmt.Sprintf("line %d", DefaultOutputCapacity) {
		t.Errorf("newest line = %q", last)
	}
}

func TestOutputLogSince(t *testing.T) {
	o := NewOutputLog(3)
	o.Append("a")
	o.Append("b")

	lines, seq := o.Since(0)
	if len(lines) != 2 || seq != 2 {
		t.Fatalf("Since(0) = %v, %d", lines, seq)
	}

	o.Append("c")
	o.Append("d")
	o.Append("e")

	lines, seq = o.Since(2)
	want := []string{"c", "d", "e"}
	if seq != 5 || len(lines) != len(want) {
		t.Fatalf("Since(2) = %v, %d", lines, seq)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Since(2)[%d] = %q, want %q", i, lines[i], want[i])
		}
	}

	// Lines evicted before the caller caught up are skipped.
	lines, _ = o.Since(0)
	if len(lines) != 3 || lines[0] != "c" {
		t.Errorf("Since(0) after eviction = %v", lines)
	}

	if lines, _ := o.Since(5); lines != nil {
		t.Errorf("Since(current) = %v, want nil", lines)
	}
}

func TestOutputLogClear(t *testing.T) {
	o := NewOutputLog(4)
	o.Append("a")
	o.Append("b")
	o.Clear()

	if o.Len() != 0 || len(o.Lines()) != 0 {
		t.Fatalf("Clear() left %d lines", o.Len())
	}
	if o.Seq() != 2 {
		t.Errorf("Seq() = %d, want 2", o.Seq())
	}
	o.Append("c")
	if got := o.Lines(); len(got) != 1 || got[0] != "c" {
		t.Errorf("Lines() = %v", got)
	}
}

func TestOutputLogConcurrentAppend(t *testing.T) {
	o := NewOutputLog(100)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				o.Append("x")
				_ = o.Lines()
			}
		}()
	}
	wg.Wait()

	if o.Len() != 100 {
		t.Errorf("Len() = %d, want 100", o.Len())
	}
	if o.Seq() != 2000 {
		t.Errorf("Seq() = %d, want 2000", o.Seq())
	}
}
