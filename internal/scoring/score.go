package scoring

import "math"

// ScoreAnswers grades answers against normalized questions and returns an
// integer percentage in [0,100].
//
// Questions without a matching answer are skipped entirely. An mcq answer earns
// the question's points only when it equals the resolved correct index. Text
// answers always earn full points here; their real grading is the LLM feedback
// pass. Code answers earn the score the execution judge attached to them,
// capped at the question's points, or full points when only IsCorrect is set.
func ScoreAnswers(answers []UserAnswer, questions []Question) int {
	byQuestion := make(map[string]UserAnswer, len(answers))
	for _, a := range answers {
		if _, seen := byQuestion[a.QuestionID]; !seen {
			byQuestion[a.QuestionID] = a
		}
	}

	var total, max float64
	for _, q := range questions {
		a, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		points := float64(q.Weight())
		max += points

		switch q.Type {
		case QuestionTypeMCQ:
			want, ok := q.CorrectIndex()
			if !ok {
				continue
			}
			if got, ok := a.Answer.Index(); ok && got == want {
				total += points
			}
		case QuestionTypeText:
			total += points
		case QuestionTypeCode:
			total += codeAward(a, points)
		}
	}

	if max <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(total / max * 100)))
}

func codeAward(a UserAnswer, points float64) float64 {
	if a.Score != nil {
		return math.Min(math.Max(*a.Score, 0), points)
	}
	if a.IsCorrect != nil && *a.IsCorrect {
		return points
	}
	return 0
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
