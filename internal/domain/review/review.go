// internal/domain/review/review.go
package review

import (
	"strconv"
	"strings"
)

// Review is one customer review shown on a product page.
type Review struct {
	ProductID string `json:"productId" firestore:"productId"`
	Date      string `json:"date" firestore:"date"`
	Text      string `json:"text" firestore:"text"`
	Name      string `json:"name" firestore:"name"`
	ImageSrc  string `json:"imageSrc" firestore:"imageSrc"`
	Rating    int    `json:"rating" firestore:"rating"`
}

// FilterByProductID returns the reviews for productID, in input order.
func FilterByProductID(reviews []Review, productID string) []Review {
	productID = strings.TrimSpace(productID)
	var out []Review
	for _, r := range reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating formats the mean rating to one decimal ("4.7").
// ok=false when there are no reviews.
func AverageRating(reviews []Review) (string, bool) {
	if len(reviews) == 0 {
		return "", false
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return strconv.FormatFloat(avg, 'f', 1, 64), true
}
