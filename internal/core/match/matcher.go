package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// TieBreak selects which candidate wins when several reach the same
// maximum score. The observed legacy behavior is first-wins; the rule is
// configurable because first-wins is not provably the intended semantics
// for genuinely ambiguous names.
type TieBreak int

const (
	// TieBreakFirst keeps the first candidate that reached the maximum
	// score, in the order supplied.
	TieBreakFirst TieBreak = iota
	// TieBreakLast keeps the last candidate that reached the maximum score.
	TieBreakLast
)

// Default thresholds for the two matching regimes. Registry resolution
// uses the composite score; display-list matching uses the Levenshtein
// ratio. Callers must be explicit about which regime they need.
const (
	DefaultResolveThreshold     = 60.0
	DefaultPersonnelRatioCutoff = 70
	DefaultVehicleRatioCutoff   = 80
)

// Scoring weights of the composite score.
const (
	exactScore       = 100.0
	partialWeight    = 0.7
	minPartialTokLen = 3
	substringBonus   = 20.0
)

// Config controls matcher behavior.
type Config struct {
	// Threshold is the minimum composite score a candidate must reach to
	// be accepted during registry resolution.
	Threshold float64
	// TieBreak decides between candidates with equal maximum scores.
	TieBreak TieBreak
}

// DefaultConfig returns the matcher configuration used for registry
// name resolution.
func DefaultConfig() Config {
	return Config{Threshold: DefaultResolveThreshold, TieBreak: TieBreakFirst}
}

// Matcher scores noisy name queries against canonical candidates.
type Matcher struct {
	cfg Config
}

// New creates a Matcher with the given configuration.
func New(cfg Config) *Matcher {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultResolveThreshold
	}
	return &Matcher{cfg: cfg}
}

// Resolve maps a noisy query to the best canonical candidate, or reports
// that no candidate reached the acceptance threshold. An exact match after
// normalization short-circuits and always wins.
func (m *Matcher) Resolve(query string, candidates []string) (string, bool) {
	queryNorm := Normalize(query)
	if queryNorm == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		candidateNorm := Normalize(candidate)
		if queryNorm == candidateNorm {
			return candidate, true
		}

		score := compositeScore(queryNorm, candidateNorm)
		if score < m.cfg.Threshold {
			continue
		}
		better := score > bestScore
		if m.cfg.TieBreak == TieBreakLast {
			better = score >= bestScore
		}
		if better {
			bestScore = score
			best = candidate
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// Score returns the composite score of a query against a candidate.
// Both inputs are normalized first. An exact match scores 100.
func Score(query, candidate string) float64 {
	queryNorm := Normalize(query)
	candidateNorm := Normalize(candidate)
	if queryNorm == "" {
		return 0
	}
	if queryNorm == candidateNorm {
		return exactScore
	}
	return compositeScore(queryNorm, candidateNorm)
}

// compositeScore computes the token-coverage score plus the substring
// bonus over already-normalized strings.
//
// Each query token earns full credit for an exact token match, or partial
// credit when one token contains the other and the shorter side has at
// least three letters. Coverage is only counted when the query has no
// more tokens than the candidate; a longer query can still score through
// the substring bonus.
func compositeScore(queryNorm, candidateNorm string) float64 {
	queryTokens := strings.Fields(queryNorm)
	candidateTokens := strings.Fields(candidateNorm)

	score := 0.0
	if len(queryTokens) > 0 && len(queryTokens) <= len(candidateTokens) {
		credits := 0.0
		for _, qt := range queryTokens {
			for _, ct := range candidateTokens {
				if qt == ct {
					credits++
					break
				}
				if minLen(qt, ct) >= minPartialTokLen && (strings.Contains(ct, qt) || strings.Contains(qt, ct)) {
					credits += partialWeight
					break
				}
			}
		}
		score = credits / float64(len(queryTokens)) * 100
	}

	if strings.Contains(candidateNorm, queryNorm) || strings.Contains(queryNorm, candidateNorm) {
		score += substringBonus
	}

	return score
}

func minLen(a, b string) int {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la < lb {
		return la
	}
	return lb
}

// RatioScore returns a 0-100 similarity ratio between two strings based
// on Levenshtein edit distance over their normalized forms. This is the
// display-context regime; it is deliberately separate from the composite
// score used for registry resolution.
func RatioScore(a, b string) int {
	an := Normalize(a)
	bn := Normalize(b)
	if an == "" && bn == "" {
		return 100
	}
	longest := len([]rune(an))
	if l := len([]rune(bn)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(an, bn)
	return int(float64(longest-dist) / float64(longest) * 100)
}

// ResolveRatio maps a query to the best candidate by Levenshtein ratio,
// subject to a minimum cutoff (70-80 depending on call site). Ties follow
// the matcher's configured tie-break.
func (m *Matcher) ResolveRatio(query string, candidates []string, cutoff int) (string, bool) {
	if Normalize(query) == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		score := RatioScore(query, candidate)
		if score < cutoff {
			continue
		}
		better := score > bestScore
		if m.cfg.TieBreak == TieBreakLast {
			better = score >= bestScore
		}
		if better {
			bestScore = score
			best = candidate
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
