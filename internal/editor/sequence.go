package editor

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

const sequenceKey = "estimateNumberSequence"

// Sequence issues estimate numbers of the form YYYYMMDD-NNN, where NNN is a
// zero-padded running count per calendar date.
//
// The counter is a local read-increment-write cycle with no transactional
// guarantee: two issuers sharing the same store could read the same prior
// count and hand out duplicate numbers. That is the accepted contract of a
// local counter; callers must not treat the numbers as globally unique.
type Sequence struct {
	kv KV
}

func NewSequence(kv KV) *Sequence {
	return &Sequence{kv: kv}
}

// Next issues the next number for the given date.
func (s *Sequence) Next(date time.Time) string {
	return s.nextForKey(date.Format("20060102"))
}

// NextForDateString issues the next number for a date given in string form
// (typically "2006-01-02" from a date input). The key is the date's digit
// run; unparseable input falls back to today so the mutation stays total.
func (s *Sequence) NextForDateString(date string) string {
	return s.nextForKey(normalizeDateKey(date))
}

func (s *Sequence) nextForKey(key string) string {
	counts := s.loadCounts()
	counts[key]++
	s.storeCounts(counts)
	return fmt.Sprintf("%s-%03d", key, counts[key])
}

func (s *Sequence) loadCounts() map[string]int {
	counts := map[string]int{}
	raw, err := s.kv.Get(sequenceKey)
	if err != nil || len(raw) == 0 {
		return counts
	}
	// Corrupt blobs reset to empty rather than failing a mutation.
	if err := json.Unmarshal(raw, &counts); err != nil {
		return map[string]int{}
	}
	return counts
}

func (s *Sequence) storeCounts(counts map[string]int) {
	raw, err := json.Marshal(counts)
	if err != nil {
		log.Printf("[editor][sequence] marshal failed err=%v", err)
		return
	}
	if err := s.kv.Set(sequenceKey, raw); err != nil {
		log.Printf("[editor][sequence] persist failed err=%v", err)
	}
}

func normalizeDateKey(date string) string {
	var b strings.Builder
	for _, r := range date {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 8 {
		return time.Now().Format("20060102")
	}
	return digits[:8]
}
