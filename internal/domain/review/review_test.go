// internal/domain/review/review_test.go
package review_test

import (
	"testing"

	"radacycling/internal/domain/review"
)

func TestAverageRating(t *testing.T) {
	reviews := []review.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 5},
	}
	got, ok := review.AverageRating(reviews)
	if !ok || got != "4.7" {
		t.Fatalf("AverageRating = (%q, %v), want (4.7, true)", got, ok)
	}
}

func TestAverageRatingEmpty(t *testing.T) {
	if got, ok := review.AverageRating(nil); ok || got != "" {
		t.Fatalf("AverageRating(nil) = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestFilterByProductID(t *testing.T) {
	reviews := []review.Review{
		{ProductID: "p1", Name: "a"},
		{ProductID: "p2", Name: "b"},
		{ProductID: "p1", Name: "c"},
	}
	got := review.FilterByProductID(reviews, "p1")
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Fatalf("got %v", got)
	}
}
