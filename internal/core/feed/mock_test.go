package feed

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var (
	tStart = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tEnd   = time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
)

func TestPosts_CountFollowsLimitAndCorpus(t *testing.T) {
	corpus := len(mockTexts)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero", limit: 0, want: 0},
		{name: "negative clamps to zero", limit: -3, want: 0},
		{name: "below corpus", limit: 3, want: 3},
		{name: "exact corpus", limit: corpus, want: corpus},
		{name: "above corpus caps", limit: corpus + 15, want: corpus},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(1)
			batch := g.Posts("demo", tStart, tEnd, tc.limit)
			if got := len(batch.Data); got != tc.want {
				t.Fatalf("len(Data) = %d, want %d", got, tc.want)
			}
			if batch.Meta.ResultCount != tc.want {
				t.Fatalf("Meta.ResultCount = %d, want %d", batch.Meta.ResultCount, tc.want)
			}
		})
	}
}

func TestPosts_TimestampsInteriorAndReverseChronological(t *testing.T) {
	g := NewGenerator(7)
	batch := g.Posts("demo", tStart, tEnd, 5)

	prev := time.Time{}
	for i, p := range batch.Data {
		ts, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			t.Fatalf("post %d: bad created_at %q: %v", i, p.CreatedAt, err)
		}
		if !ts.After(tStart) || !ts.Before(tEnd) {
			t.Fatalf("post %d: created_at %s outside (%s, %s)", i, ts, tStart, tEnd)
		}
		// newest first: each timestamp must not exceed the previous one
		if i > 0 && ts.After(prev) {
			t.Fatalf("post %d: created_at %s after predecessor %s", i, ts, prev)
		}
		prev = ts
	}
}

func TestPosts_EmptyBatchMeta(t *testing.T) {
	g := NewGenerator(1)
	batch := g.Posts("demo", tStart, tEnd, 0)

	if batch.Meta.NewestID != nil || batch.Meta.OldestID != nil {
		t.Fatalf("empty batch must have nil newest/oldest ids, got %v / %v",
			batch.Meta.NewestID, batch.Meta.OldestID)
	}
	if batch.Meta.NextToken == "" || batch.Meta.PreviousToken == "" {
		t.Fatal("pagination tokens must be present even for an empty batch")
	}
}

func TestPosts_MetaIDsMatchExtremes(t *testing.T) {
	g := NewGenerator(3)
	batch := g.Posts("demo", tStart, tEnd, 4)

	if batch.Meta.NewestID == nil || batch.Meta.OldestID == nil {
		t.Fatal("expected newest/oldest ids on a non-empty batch")
	}
	// Data is newest-first, so newest is the head and oldest the tail
	if *batch.Meta.NewestID != batch.Data[0].ID {
		t.Fatalf("newest_id = %s, want %s", *batch.Meta.NewestID, batch.Data[0].ID)
	}
	if *batch.Meta.OldestID != batch.Data[len(batch.Data)-1].ID {
		t.Fatalf("oldest_id = %s, want %s", *batch.Meta.OldestID, batch.Data[len(batch.Data)-1].ID)
	}
}

func TestPosts_AuthorProfile(t *testing.T) {
	g := NewGenerator(9)
	batch := g.Posts("alcaldia", tStart, tEnd, 2)

	if len(batch.Includes.Users) != 1 {
		t.Fatalf("want exactly one included user, got %d", len(batch.Includes.Users))
	}
	u := batch.Includes.Users[0]
	if u.Username != "alcaldia" || u.Name != "Alcaldia" {
		t.Fatalf("unexpected author identity: %q / %q", u.Username, u.Name)
	}
	if !strings.Contains(u.ProfileImageURL, "picsum.photos/seed/alcaldia") {
		t.Fatalf("unexpected profile image url %q", u.ProfileImageURL)
	}
	for _, p := range batch.Data {
		if p.AuthorID != u.ID {
			t.Fatalf("post author %q does not match included user %q", p.AuthorID, u.ID)
		}
	}
}

func TestPosts_Deterministic(t *testing.T) {
	a := NewGenerator(42).Posts("demo", tStart, tEnd, 5)
	b := NewGenerator(42).Posts("demo", tStart, tEnd, 5)

	if len(a.Data) != len(b.Data) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Data), len(b.Data))
	}
	for i := range a.Data {
		if !reflect.DeepEqual(a.Data[i], b.Data[i]) {
			t.Fatalf("post %d differs between equal seeds", i)
		}
	}
	if a.Meta.NextToken != b.Meta.NextToken {
		t.Fatal("tokens differ between equal seeds")
	}
}

func TestComments_EveryIDCoveredAtLeastOnce(t *testing.T) {
	ids := []string{"100", "200", "300", "400"}
	g := NewGenerator(11)
	out := g.Comments(ids, 5)

	if len(out) != len(ids) {
		t.Fatalf("want %d entries, got %d", len(ids), len(out))
	}
	for _, id := range ids {
		cs, ok := out[id]
		if !ok {
			t.Fatalf("missing entry for post id %s", id)
		}
		if len(cs) < 1 || len(cs) > 5 {
			t.Fatalf("post %s: comment count %d outside [1,5]", id, len(cs))
		}
		for i, c := range cs {
			if c.TweetID != id {
				t.Fatalf("post %s comment %d: tweet_id %q", id, i, c.TweetID)
			}
			if c.Text == "" {
				t.Fatalf("post %s comment %d: empty text", id, i)
			}
			if !strings.HasPrefix(c.ID, id+"_c") {
				t.Fatalf("post %s comment %d: id %q", id, i, c.ID)
			}
		}
	}
}

func TestComments_TimestampsTrailNow(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(5, WithClock(func() time.Time { return now }))
	out := g.Comments([]string{"abc"}, 8)

	floor := now.Add(-10001 * time.Minute)
	for i, c := range out["abc"] {
		ts, err := time.Parse(time.RFC3339, c.CreatedAt)
		if err != nil {
			t.Fatalf("comment %d: bad created_at %q: %v", i, c.CreatedAt, err)
		}
		if ts.After(now) || ts.Before(floor) {
			t.Fatalf("comment %d: created_at %s outside trailing window", i, ts)
		}
	}
}

func TestComments_MaxPerPostClamped(t *testing.T) {
	g := NewGenerator(2)
	out := g.Comments([]string{"x"}, 0)
	if len(out["x"]) != 1 {
		t.Fatalf("max_per_post < 1 should still yield one comment, got %d", len(out["x"]))
	}
}
