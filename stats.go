package chainedtable

// Stats is a point-in-time summary of a table's shape and usage.
type Stats struct {
	Len          int
	Capacity     int
	LoadFactor   float64
	Generations  int // rehashes performed since construction
	LongestChain int
	EmptyBuckets int
	Lookups      int64 // calls to Get and Contains
	Probes       int64 // key comparisons made while scanning chains
}

// Stats walks every bucket, so it costs O(Cap()).
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Len:         t.elemCount,
		Capacity:    len(t.buckets),
		LoadFactor:  float64(t.elemCount) / float64(len(t.buckets)),
		Generations: t.resizeGenerations,
		Lookups:     t.lookups,
		Probes:      t.probes,
	}
	for _, b := range t.buckets {
		if len(b) == 0 {
			s.EmptyBuckets++
		}
		s.LongestChain = max(s.LongestChain, len(b))
	}
	return s
}
