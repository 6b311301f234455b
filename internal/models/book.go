package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookID           int                `bson:"bookID" json:"bookID"`
	Title            string             `bson:"title" json:"title"`
	Authors          string             `bson:"authors" json:"authors"`
	AverageRating    float64            `bson:"average_rating" json:"average_rating"`
	NumPages         int                `bson:"num_pages" json:"num_pages"`
	RatingsCount     int                `bson:"ratings_count" json:"ratings_count"`
	TextReviewsCount int                `bson:"text_reviews_count" json:"text_reviews_count"`
	ImgURL           string             `bson:"img_url" json:"img_url"`
}

const (
	BookEntity = "book"
)

// epsilon compensates binary representation error so exact .xx5 sums
// round up, matching IEEE-754 half-up expectations at two decimals.
const epsilon = 2.220446049250313e-16

// NextRating folds a submitted rating into the running mean and returns
// the new average (rounded to two decimals) and ratings count.
func (b Book) NextRating(userRating float64) (float64, int) {
	total := b.AverageRating*float64(b.RatingsCount) + userRating
	count := b.RatingsCount + 1
	average := total / float64(count)
	return math.Round((average+epsilon)*100) / 100, count
}
