package observ

import (
	"strings"
	"testing"
)

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("load+render")
	timer.End(idx, "3 dump(s)")

	s := timer.Summary()
	if !strings.Contains(s, "load+render") {
		t.Errorf("summary missing phase name:\n%s", s)
	}
	if !strings.Contains(s, "// 3 dump(s)") {
		t.Errorf("summary missing note:\n%s", s)
	}
	if !strings.Contains(s, "total") {
		t.Errorf("summary missing total:\n%s", s)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "")
	timer.End(5, "")
	if got := len(timer.phases); got != 0 {
		t.Errorf("phases = %d, want 0", got)
	}
}
