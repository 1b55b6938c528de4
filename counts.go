package huffman

import (
	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each literal Symbol.
type FrequencyTable [AlphabetSize]uint64

// CountFrequencies reads r to exhaustion, one BitsPerWord-bit value at a time,
// and tallies each value.  The caller must Reset r before reading it again.
func CountFrequencies(r BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for {
		value, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isExhausted(err) {
				return freq, nil
			}
			return freq, errors.Wrap(err, "Failed to read input while counting symbols")
		}
		freq[value]++
	}
}

// Distinct returns the number of literal symbols with a non-zero count.
func (freq *FrequencyTable) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the input length in bytes.
func (freq *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total = saturatingAdd(total, count)
	}
	return total
}
