package profile

import "sort"

// Score is one author's composite engagement score, in [0, 100].
type Score struct {
	Author string
	Value  float64
}

// metric weights for the engagement score
const (
	weightMessages = 0.30
	weightPerDay   = 0.20
	weightAvgWords = 0.20
	weightEmoji    = 0.10
	weightMedia    = 0.10
	weightLink     = 0.10
)

// Scores min-max normalizes six profile metrics independently across the
// author set and combines them into one weighted score per author, highest
// first. A metric on which every author is tied contributes exactly 0 for
// everyone. Equal scores keep the profile input order.
func Scores(profiles []Profile) []Score {
	messages := normalize(profiles, func(p Profile) float64 { return float64(p.TotalMessages) })
	perDay := normalize(profiles, func(p Profile) float64 { return p.PerDay })
	avgWords := normalize(profiles, func(p Profile) float64 { return p.AvgWords })
	emoji := normalize(profiles, func(p Profile) float64 { return p.EmojiPerMsg })
	media := normalize(profiles, func(p Profile) float64 { return p.MediaRatio })
	link := normalize(profiles, func(p Profile) float64 { return p.LinkRatio })

	scores := make([]Score, 0, len(profiles))
	for i, p := range profiles {
		sum := weightMessages*messages[i] +
			weightPerDay*perDay[i] +
			weightAvgWords*avgWords[i] +
			weightEmoji*emoji[i] +
			weightMedia*media[i] +
			weightLink*link[i]
		scores = append(scores, Score{Author: p.Author, Value: round2(sum * 100)})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Value > scores[j].Value })
	return scores
}

// normalize maps one metric to [0, 1] via min-max across all profiles. When
// max == min the metric is degenerate and everyone gets 0 rather than NaN.
func normalize(profiles []Profile, metric func(Profile) float64) []float64 {
	out := make([]float64, len(profiles))
	if len(profiles) == 0 {
		return out
	}

	min, max := metric(profiles[0]), metric(profiles[0])
	for _, p := range profiles[1:] {
		v := metric(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}

	for i, p := range profiles {
		out[i] = (metric(p) - min) / (max - min)
	}
	return out
}
