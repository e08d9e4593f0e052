package storefront

import (
	"math"
	"strings"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
	maxStars   = 5
)

// Stars renders rating as five glyphs, filled for each point up to rating
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}
	return strings.Repeat(starFilled, rating) + strings.Repeat(starEmpty, maxStars-rating)
}

// StarsFor renders a fractional average rounded to the nearest point
func StarsFor(average float64) string {
	return Stars(int(math.Round(average)))
}

// Average returns the mean of ratings, 0 when there are none
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
