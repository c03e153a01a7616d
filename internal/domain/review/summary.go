package review

import "math"

// Summary aggregates the ratings of one property.
type Summary struct {
	Histogram    map[int]int
	TotalReviews int
	Average      *float64
}

func Summarize(ratings []int) Summary {
	s := EmptySummary()
	sum := 0
	for _, r := range ratings {
		if r < MinRating || r > MaxRating {
			continue
		}
		s.Histogram[r]++
		s.TotalReviews++
		sum += r
	}
	if s.TotalReviews > 0 {
		avg := RoundRating(float64(sum) / float64(s.TotalReviews))
		s.Average = &avg
	}
	return s
}

// FromHistogram builds a Summary from per-star counts, as returned by a GROUP BY.
func FromHistogram(counts map[int]int) Summary {
	s := EmptySummary()
	sum := 0
	for star := MinRating; star <= MaxRating; star++ {
		n := counts[star]
		s.Histogram[star] = n
		s.TotalReviews += n
		sum += star * n
	}
	if s.TotalReviews > 0 {
		avg := RoundRating(float64(sum) / float64(s.TotalReviews))
		s.Average = &avg
	}
	return s
}

func EmptySummary() Summary {
	h := make(map[int]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		h[star] = 0
	}
	return Summary{Histogram: h}
}

// RoundRating rounds to one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
