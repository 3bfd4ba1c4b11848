/*
Package score implements the scoring oracle from spec.md §3/§9: a
finite mapping `aa_triplet -> (ninemer -> integer score)`, immutable
after load and shared by reference across every job.

The inner map is represented per poly's energy_params package habit of
choosing a dense, index-packed array for the hot path and falling back
to a hash table when a triplet's entries are too sparse to justify the
array's memory, per spec.md §9's "dynamic typing of the scoring table"
design note.
*/
package score

// ninemerIndexSpace is the number of distinct 9-nucleotide strings
// (4^9), reachable by packing each base into 2 bits.
const ninemerIndexSpace = 1 << 18

// denseThreshold is the minimum number of populated ninemers a triplet
// needs before its table is backed by a dense array instead of a map.
// Below this, the array would be mostly wasted zero-value slots.
const denseThreshold = 4096

var nucleotideCode = map[byte]int32{'A': 0, 'C': 1, 'G': 2, 'T': 3}

// packNinemer packs a 9-nucleotide string into an 18-bit index. It
// returns ok=false if the string isn't exactly 9 valid nucleotides.
func packNinemer(ninemer string) (int, bool) {
	if len(ninemer) != 9 {
		return 0, false
	}
	index := 0
	for i := 0; i < 9; i++ {
		code, ok := nucleotideCode[ninemer[i]]
		if !ok {
			return 0, false
		}
		index = (index << 2) | int(code)
	}
	return index, true
}

// tripletTable is one amino-acid triplet's ninemer -> score mapping,
// represented either as a dense array (fast path) or a sparse map
// (memory-conscious fallback), keyed by the same packed index either
// way.
type tripletTable struct {
	dense  []int32
	sparse map[int]int32
}

func newTripletTable(entries map[string]int) tripletTable {
	if len(entries) >= denseThreshold {
		dense := make([]int32, ninemerIndexSpace)
		for ninemer, v := range entries {
			if idx, ok := packNinemer(ninemer); ok {
				dense[idx] = int32(v)
			}
		}
		return tripletTable{dense: dense}
	}

	sparse := make(map[int]int32, len(entries))
	for ninemer, v := range entries {
		if idx, ok := packNinemer(ninemer); ok {
			sparse[idx] = int32(v)
		}
	}
	return tripletTable{sparse: sparse}
}

func (t tripletTable) lookup(index int) int {
	if t.dense != nil {
		return int(t.dense[index])
	}
	return int(t.sparse[index])
}

// Oracle is the immutable, shared scoring table. Construct one with
// Load or Build at worker startup and pass it by reference into every
// optimizer.
type Oracle struct {
	triplets map[string]tripletTable
}

// Build constructs an Oracle directly from a parsed
// `triplet -> (ninemer -> score)` map, choosing a dense or sparse
// backing per triplet.
func Build(raw map[string]map[string]int) *Oracle {
	o := &Oracle{triplets: make(map[string]tripletTable, len(raw))}
	for triplet, entries := range raw {
		o.triplets[triplet] = newTripletTable(entries)
	}
	return o
}

// Score returns the score for a specific amino-acid triplet's
// 9-nucleotide encoding. A missing triplet or missing ninemer yields 0,
// per spec.md §3.
func (o *Oracle) Score(triplet, ninemer string) int {
	if o == nil {
		return 0
	}
	table, ok := o.triplets[triplet]
	if !ok {
		return 0
	}
	index, ok := packNinemer(ninemer)
	if !ok {
		return 0
	}
	return table.lookup(index)
}
