package memory

import (
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"context"
	"testing"
)

func TestLaunchStore(t *testing.T) {
	ctx := context.Background()
	s := NewLaunchStore(3)

	for _, keys := range []string{"a", "b", "c", "d"} {
		if err := s.RecordLaunch(ctx, hotkeyd.Launch{Keys: keys}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 0, want: []string{"d", "c", "b"}},
		{limit: 2, want: []string{"d", "c"}},
		{limit: 10, want: []string{"d", "c", "b"}},
	}
	for _, tt := range tests {
		got, err := s.RecentLaunches(ctx, tt.limit)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("limit %d: got %d launches, want %d", tt.limit, len(got), len(tt.want))
		}
		for i := range got {
			if got[i].Keys != tt.want[i] {
				t.Errorf("limit %d: launch %d = %q, want %q", tt.limit, i, got[i].Keys, tt.want[i])
			}
		}
	}
}

var _ hotkeyd.LaunchStore = (*LaunchStore)(nil)
