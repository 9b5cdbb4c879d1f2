package model

// MaxPhotos is the maximum number of photos per item.
const MaxPhotos = 8

// Photo is a single entry of an item's photo set. Data holds the compressed
// image bytes (base64-encoded in JSON transport).
type Photo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data []byte `json:"data,omitempty"`
	MIME string `json:"mime"`
	Main bool   `json:"main"`
}

// PhotoSet is an item's ordered photo collection. All operations return a
// new slice and restore the main-photo invariant: at most MaxPhotos entries,
// and when the set is non-empty exactly one entry is main (the first entry
// by default).
type PhotoSet []Photo

// Add appends a photo. It fails when the set is already at MaxPhotos. The
// new photo becomes main only if the set was previously empty.
func (ps PhotoSet) Add(p Photo) (PhotoSet, error) {
	if len(ps) >= MaxPhotos {
		return ps, &LimitError{What: "photos", Limit: MaxPhotos}
	}
	p.Main = len(ps) == 0
	out := make(PhotoSet, len(ps), len(ps)+1)
	copy(out, ps)
	return normalizeMain(append(out, p)), nil
}

// Remove drops the entry at index. Removing the current main photo promotes
// the new first entry. Out-of-range indexes are a no-op.
func (ps PhotoSet) Remove(index int) PhotoSet {
	if index < 0 || index >= len(ps) {
		return ps
	}
	out := make(PhotoSet, 0, len(ps)-1)
	out = append(out, ps[:index]...)
	out = append(out, ps[index+1:]...)
	return normalizeMain(out)
}

// SetMain marks exactly the entry at index as main. Out-of-range indexes
// are a no-op.
func (ps PhotoSet) SetMain(index int) PhotoSet {
	if index < 0 || index >= len(ps) {
		return ps
	}
	out := make(PhotoSet, len(ps))
	copy(out, ps)
	for i := range out {
		out[i].Main = i == index
	}
	return out
}

// Reorder moves the entry at from to position to, preserving flags: the
// main-photo identity follows the moved entry, not its position.
func (ps PhotoSet) Reorder(from, to int) PhotoSet {
	if from < 0 || from >= len(ps) || to < 0 || to >= len(ps) || from == to {
		return ps
	}
	out := make(PhotoSet, 0, len(ps))
	out = append(out, ps[:from]...)
	out = append(out, ps[from+1:]...)
	moved := ps[from]
	out = append(out[:to], append(PhotoSet{moved}, out[to:]...)...)
	return normalizeMain(out)
}

// Main returns the index of the main photo, or -1 for an empty set.
func (ps PhotoSet) Main() int {
	for i := range ps {
		if ps[i].Main {
			return i
		}
	}
	return -1
}

// normalizeMain restores the main-photo invariant after any mutation: the
// first flagged entry stays main, any extra flags are cleared, and a
// non-empty set without a main gets its first entry promoted.
func normalizeMain(ps PhotoSet) PhotoSet {
	if len(ps) == 0 {
		return ps
	}
	found := false
	for i := range ps {
		if ps[i].Main {
			if found {
				ps[i].Main = false
			}
			found = true
		}
	}
	if !found {
		ps[0].Main = true
	}
	return ps
}
