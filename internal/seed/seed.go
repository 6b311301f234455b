package seed

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Williamriis/bookshelf-api/internal/models"
	logger "github.com/Williamriis/bookshelf-api/loggers"

	_ "embed"
)

//go:embed books.json
var booksJSON []byte

type sample struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
}

// Run wipes the books collection and fills it with count random records.
// Destructive: every existing book is deleted first.
func Run(ctx context.Context, coll *mongo.Collection, count int) error {
	titles, authors, err := Pools()
	if err != nil {
		return err
	}

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	books := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		books = append(books, RandomBook(i, titles, authors))
	}

	if _, err := coll.InsertMany(ctx, books); err != nil {
		return err
	}

	logger.Logger.Infof("seeded %d random books", count)
	return nil
}

// Pools derives the title pool and the deduplicated author pool (first
// '-'-separated segment of each authors string) from the embedded data.
func Pools() (titles, authors []string, err error) {
	var samples []sample
	if err := json.Unmarshal(booksJSON, &samples); err != nil {
		return nil, nil, err
	}

	seen := map[string]bool{}
	for _, s := range samples {
		titles = append(titles, s.Title)
		first := strings.SplitN(s.Authors, "-", 2)[0]
		if !seen[first] {
			seen[first] = true
			authors = append(authors, first)
		}
	}
	return titles, authors, nil
}

func RandomBook(id int, titles, authors []string) models.Book {
	return models.Book{
		BookID:        id,
		Title:         titles[rand.Intn(len(titles))],
		Authors:       authors[rand.Intn(len(authors))],
		NumPages:      rand.Intn(2000),
		RatingsCount:  rand.Intn(10000),
		AverageRating: math.Round(rand.Float64()*5*100) / 100,
	}
}
