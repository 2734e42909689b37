package review

// AverageApproved reduces a product's review set to a single display rating:
// the arithmetic mean of approved reviews' ratings, or DefaultRating when no
// approved review exists.
func AverageApproved(reviews []Review) float64 {
	var sum int64
	var count int64
	for _, r := range reviews {
		if !r.Approved {
			continue
		}
		sum += int64(r.Rating)
		count++
	}
	if count == 0 {
		return DefaultRating
	}
	return float64(sum) / float64(count)
}
