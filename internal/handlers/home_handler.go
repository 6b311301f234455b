package handlers

import (
	"encoding/json"
	"net/http"
)

// GET / — a small self-describing guide to the API surface.
func Home(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{
		"homepage":                   "/books",
		"queryOrder":                 "?order=highest, lowest, longest, shortest",
		"queryKeyword":               "?keyword=an author or title",
		"queryPage":                  "?page=1,2,3,4...",
		"individualBook":             "/books/1,2,3,4...",
		"keywordResultsCanBeOrdered": "true",
	})
}
