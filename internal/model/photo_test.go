package model

import (
	"errors"
	"fmt"
	"testing"
)

func photoSet(n int) PhotoSet {
	var ps PhotoSet
	for i := 0; i < n; i++ {
		var err error
		ps, err = ps.Add(Photo{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("photo-%d.jpg", i)})
		if err != nil {
			panic(err)
		}
	}
	return ps
}

func TestAddFirstPhotoBecomesMain(t *testing.T) {
	ps := photoSet(1)
	if !ps[0].Main {
		t.Error("first photo should become main")
	}

	ps, _ = ps.Add(Photo{ID: "p1"})
	if ps.Main() != 0 {
		t.Errorf("main should stay on first photo, got index %d", ps.Main())
	}
}

func TestAddRejectsNinthPhoto(t *testing.T) {
	ps := photoSet(MaxPhotos)

	got, err := ps.Add(Photo{ID: "extra"})
	var lerr *LimitError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LimitError, got %v", err)
	}
	if lerr.Limit != MaxPhotos {
		t.Errorf("error should name the limit %d, got %d", MaxPhotos, lerr.Limit)
	}
	if len(got) != MaxPhotos {
		t.Errorf("set must be unchanged, got %d photos", len(got))
	}
}

func TestRemoveMainPromotesFirst(t *testing.T) {
	ps := photoSet(3)

	ps = ps.Remove(0)
	if len(ps) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(ps))
	}
	if ps.Main() != 0 {
		t.Errorf("new first photo should be promoted to main, got index %d", ps.Main())
	}
	if ps[0].ID != "p1" {
		t.Errorf("expected p1 first, got %s", ps[0].ID)
	}
}

func TestRemoveNonMainKeepsMain(t *testing.T) {
	ps := photoSet(3).SetMain(1)

	ps = ps.Remove(2)
	if ps.Main() != 1 {
		t.Errorf("main should be unchanged, got index %d", ps.Main())
	}
}

func TestSetMainExclusive(t *testing.T) {
	ps := photoSet(3).SetMain(2)

	count := 0
	for _, p := range ps {
		if p.Main {
			count++
		}
	}
	if count != 1 || !ps[2].Main {
		t.Errorf("exactly the chosen photo should be main: %+v", ps)
	}
}

func TestSetMainOutOfRangeNoop(t *testing.T) {
	ps := photoSet(2)
	got := ps.SetMain(5)
	if got.Main() != 0 {
		t.Errorf("out-of-range SetMain should be a no-op, got main %d", got.Main())
	}
}

func TestReorderMainFollowsEntry(t *testing.T) {
	ps := photoSet(3) // main on p0

	ps = ps.Reorder(0, 2)
	if ps[2].ID != "p0" {
		t.Fatalf("expected p0 moved to index 2, got %s", ps[2].ID)
	}
	if ps.Main() != 2 {
		t.Errorf("main should follow the moved photo, got index %d", ps.Main())
	}
}

func TestReorderOutOfRangeNoop(t *testing.T) {
	ps := photoSet(2)
	got := ps.Reorder(0, 5)
	if got[0].ID != "p0" || got[1].ID != "p1" {
		t.Errorf("out-of-range reorder should be a no-op: %+v", got)
	}
}

func TestNormalizeMainClearsDuplicates(t *testing.T) {
	ps := PhotoSet{
		{ID: "a", Main: true},
		{ID: "b", Main: true},
		{ID: "c"},
	}
	ps = normalizeMain(ps)
	if !ps[0].Main || ps[1].Main || ps[2].Main {
		t.Errorf("only the first flagged photo should stay main: %+v", ps)
	}
}
