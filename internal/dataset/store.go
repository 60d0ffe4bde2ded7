package dataset

import "math/rand"

// Store owns the live dataset plus an immutable copy of the original
// positions so a shuffled layout can be restored exactly. The store is the
// only writer of record positions; the renderer just reads.
type Store struct {
	records  []Record
	original []Record
	shuffled bool
	rng      *rand.Rand
}

// NewStore wraps records, capturing their positions for later restoration.
func NewStore(records []Record) *Store {
	original := make([]Record, len(records))
	copy(original, records)
	return &Store{
		records:  records,
		original: original,
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
}

// NewStoreWithSeed is NewStore with a deterministic shuffle source.
func NewStoreWithSeed(records []Record, seed int64) *Store {
	s := NewStore(records)
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Records returns the live record slice. Callers must not mutate it.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the dataset size.
func (s *Store) Len() int {
	return len(s.records)
}

// Shuffled reports whether the layout is currently randomized.
func (s *Store) Shuffled() bool {
	return s.shuffled
}

// Replace swaps in a freshly loaded dataset, resetting shuffle state.
func (s *Store) Replace(records []Record) {
	s.records = records
	s.original = make([]Record, len(records))
	copy(s.original, records)
	s.shuffled = false
}

// ToggleShuffle randomizes every record's position uniformly within
// ±extent on each axis, or restores the original layout if already
// shuffled. Only positions change; all other fields are untouched.
func (s *Store) ToggleShuffle(extent float32) {
	if s.shuffled {
		for i := range s.records {
			s.records[i].X = s.original[i].X
			s.records[i].Y = s.original[i].Y
			s.records[i].Z = s.original[i].Z
		}
		s.shuffled = false
		return
	}

	for i := range s.records {
		s.records[i].X = s.uniform(extent)
		s.records[i].Y = s.uniform(extent)
		s.records[i].Z = s.uniform(extent)
	}
	s.shuffled = true
}

func (s *Store) uniform(extent float32) float32 {
	return (s.rng.Float32()*2 - 1) * extent
}
