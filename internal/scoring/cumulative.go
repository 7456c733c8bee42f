package scoring

import (
	"math"
	"sort"
	"strings"
)

// LatestAttempts keeps one feedback per round: the highest attempt, ties going
// to the most recent CreatedAt. The result is sorted by RoundID.
func LatestAttempts(feedbacks []RoundFeedback) []RoundFeedback {
	latest := make(map[string]RoundFeedback, len(feedbacks))
	for _, fb := range feedbacks {
		current, ok := latest[fb.RoundID]
		if !ok || newerAttempt(fb, current) {
			latest[fb.RoundID] = fb
		}
	}

	rounds := make([]RoundFeedback, 0, len(latest))
	for _, fb := range latest {
		rounds = append(rounds, fb)
	}
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].RoundID < rounds[j].RoundID
	})
	return rounds
}

func newerAttempt(a, b RoundFeedback) bool {
	if a.Attempt != b.Attempt {
		return a.Attempt > b.Attempt
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// AggregateCumulativeFeedback rolls a user's round feedback for one interview
// into a single summary. Only the latest attempt of each round counts.
func AggregateCumulativeFeedback(feedbacks []RoundFeedback, totalRounds int) CumulativeFeedback {
	rounds := LatestAttempts(feedbacks)

	summary := CumulativeFeedback{
		RoundScores:                make([]RoundScore, 0, len(rounds)),
		CompletedRounds:            len(rounds),
		TotalRounds:                totalRounds,
		OverallStrengths:           make([]string, 0),
		OverallAreasForImprovement: make([]string, 0),
	}
	if len(rounds) == 0 {
		return summary
	}

	strengths := newOrderedSet()
	areas := newOrderedSet()
	sum := 0
	for _, fb := range rounds {
		score := clampPercent(fb.TotalScore)
		sum += score
		summary.RoundScores = append(summary.RoundScores, RoundScore{
			RoundID:   fb.RoundID,
			RoundName: fb.RoundName,
			Score:     score,
			Attempt:   fb.Attempt,
		})
		strengths.addAll(fb.Strengths)
		areas.addAll(fb.AreasForImprovement)
	}

	summary.AverageScore = clampPercent(int(math.Round(float64(sum) / float64(len(rounds)))))
	summary.OverallStrengths = strengths.items
	summary.OverallAreasForImprovement = areas.items
	return summary
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: make([]string, 0)}
}

func (s *orderedSet) addAll(values []string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}
