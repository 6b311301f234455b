package seed

import (
	"testing"

	logger "github.com/Williamriis/bookshelf-api/loggers"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func TestPools(t *testing.T) {
	titles, authors, err := Pools()
	if err != nil {
		t.Fatalf("Pools failed: %v", err)
	}

	if len(titles) == 0 {
		t.Fatal("expected a non-empty title pool")
	}

	// Author pool holds the first '-'-segment of each authors string,
	// deduplicated.
	seen := map[string]int{}
	for _, a := range authors {
		seen[a]++
		if seen[a] > 1 {
			t.Errorf("author %q appears more than once in the pool", a)
		}
	}
	if seen["Bill"] != 1 {
		t.Errorf("expected Bill in the pool exactly once, got %d", seen["Bill"])
	}
	if seen["J.K."] != 1 {
		t.Errorf("expected J.K. in the pool exactly once, got %d", seen["J.K."])
	}
}

func TestRandomBook_Bounds(t *testing.T) {
	titles, authors, err := Pools()
	if err != nil {
		t.Fatalf("Pools failed: %v", err)
	}

	for i := 0; i < 200; i++ {
		book := RandomBook(i, titles, authors)
		if book.BookID != i {
			t.Fatalf("expected sequential bookID %d, got %d", i, book.BookID)
		}
		if book.NumPages < 0 || book.NumPages >= 2000 {
			t.Errorf("num_pages out of range: %d", book.NumPages)
		}
		if book.RatingsCount < 0 || book.RatingsCount >= 10000 {
			t.Errorf("ratings_count out of range: %d", book.RatingsCount)
		}
		if book.AverageRating < 0 || book.AverageRating >= 5.005 {
			t.Errorf("average_rating out of range: %v", book.AverageRating)
		}
		if book.Title == "" || book.Authors == "" {
			t.Errorf("expected title and authors to be drawn from the pools")
		}
	}
}
