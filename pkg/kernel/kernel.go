// Package kernel defines the shared identifier types used across domains.
package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

type CandidateID int64

func (id CandidateID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id CandidateID) Int64() int64   { return int64(id) }

type ClientJobID int64

func (id ClientJobID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id ClientJobID) Int64() int64   { return int64(id) }

type RecruiterID int64

func (id RecruiterID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseCandidateID parses a candidate id from its string form. Row keys
// arriving from list views may be compound ("1024-followup"); only the
// leading numeric segment identifies the candidate.
func ParseCandidateID(s string) (CandidateID, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid candidate id %q: %w", s, err)
	}
	return CandidateID(n), nil
}
