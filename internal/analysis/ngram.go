package analysis

import (
	"sort"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// maxOccurrences bounds the sample occurrences kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n" yaml:"n"`
	Sequence    []string          `json:"sequence" yaml:"sequence"`
	Tokens      []uint8           `json:"-" yaml:"-"`
	Count       int               `json:"count" yaml:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty" yaml:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	RunID      string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	StartIndex int    `json:"start_index" yaml:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams" yaml:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31, // Prime base
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// ngramCounter counts windows of one length over one or more sequences.
// Windows never span two sequences.
type ngramCounter struct {
	n       int
	buckets map[uint64][]*ngramEntry
	order   []*ngramEntry
}

func newNGramCounter(n int) *ngramCounter {
	return &ngramCounter{n: n, buckets: make(map[uint64][]*ngramEntry)}
}

func (c *ngramCounter) add(runID string, tokens []uint8) {
	rh := NewRollingHash(c.n)

	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		window := rh.Window()
		hash := rh.Hash()

		// Hash collisions share a bucket
		var entry *ngramEntry
		for _, e := range c.buckets[hash] {
			if slicesEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			c.buckets[hash] = append(c.buckets[hash], entry)
			c.order = append(c.order, entry)
		}

		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, NGramOccurrence{
				RunID:      runID,
				StartIndex: i - c.n + 1,
			})
		}
	}
}

// top returns the topK n-grams seen at least twice, most frequent first and
// earliest first among equals.
func (c *ngramCounter) top(topK int) []NGram {
	entries := make([]*ngramEntry, 0, len(c.order))
	for _, entry := range c.order {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		result[i] = NGram{
			N:           c.n,
			Sequence:    tokenNotation(entry.tokens),
			Tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}

// Token encodes a move as its enumeration value.
func Token(m gocube.Move) uint8 {
	return uint8(m)
}

func tokenize(moves []gocube.Move) []uint8 {
	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = Token(m)
	}
	return tokens
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only sequences seen at least twice are reported.
func MineNGrams(moves []gocube.Move, minN, maxN, topK int) *NGramReport {
	return MineNGramsAcrossRuns(map[string][]gocube.Move{"": moves}, minN, maxN, topK)
}

// MineNGramsAcrossRuns mines n-grams over several runs keyed by run ID.
// Occurrences record the run they were found in.
func MineNGramsAcrossRuns(runs map[string][]gocube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	if minN < 1 {
		return report
	}

	// Visit runs in a fixed order so sample occurrences are reproducible
	runIDs := make([]string, 0, len(runs))
	longest := 0
	for id, moves := range runs {
		runIDs = append(runIDs, id)
		if len(moves) > longest {
			longest = len(moves)
		}
	}
	sort.Strings(runIDs)

	tokens := make(map[string][]uint8, len(runs))
	for _, id := range runIDs {
		tokens[id] = tokenize(runs[id])
	}

	for n := minN; n <= maxN && n <= longest; n++ {
		counter := newNGramCounter(n)
		for _, id := range runIDs {
			counter.add(id, tokens[id])
		}
		if ngrams := counter.top(topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func tokenNotation(tokens []uint8) []string {
	sequence := make([]string, len(tokens))
	for i, token := range tokens {
		sequence[i] = gocube.Move(token).Notation()
	}
	return sequence
}

// slicesEqual compares two uint8 slices.
func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
