package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Williamriis/bookshelf-api/internal/constants"
	"github.com/Williamriis/bookshelf-api/internal/models"
	"github.com/Williamriis/bookshelf-api/internal/utils"
)

type BookHandler struct {
	BookCollection *mongo.Collection
	AuditLogger    utils.AuditLogger
}

func NewBookHandler(bookColl *mongo.Collection, logger utils.AuditLogger) *BookHandler {
	return &BookHandler{
		BookCollection: bookColl,
		AuditLogger:    logger,
	}
}

// GET /books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	order := r.URL.Query().Get("order")
	page := r.URL.Query().Get("page")

	filter, sort, skip, limit := BuildBookQuery(keyword, order, page)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := h.BookCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.JSONError(w, "Failed to fetch books", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		utils.JSONError(w, "Error decoding books", http.StatusInternalServerError)
		return
	}

	// An empty page without a keyword is a valid (empty) listing.
	if keyword != "" && len(books) == 0 {
		utils.JSONError(w, fmt.Sprintf("No books or authors in the database match the keyword '%s'", keyword), http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(books)
}

// GET /books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	bookID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.JSONError(w, fmt.Sprintf("No book with id \"%s\" exists.", idStr), http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var book models.Book
	if err := h.BookCollection.FindOne(ctx, bson.M{"bookID": bookID}).Decode(&book); err != nil {
		utils.JSONError(w, fmt.Sprintf("No book with id \"%s\" exists.", idStr), http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(book)
}

type RateBookRequest struct {
	UserRating *float64 `json:"user_rating"`
	ImgURL     *string  `json:"img_url"`
}

// PUT /books/{id}
//
// Read-modify-write with no concurrency guard: concurrent ratings on the
// same book can lose an update.
func (h *BookHandler) RateBook(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	bookID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.JSONError(w, fmt.Sprintf("No book with id \"%s\" exists.", idStr), http.StatusNotFound)
		return
	}

	var req RateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var book models.Book
	if err := h.BookCollection.FindOne(ctx, bson.M{"bookID": bookID}).Decode(&book); err != nil {
		utils.JSONError(w, fmt.Sprintf("No book with id \"%s\" exists.", idStr), http.StatusNotFound)
		return
	}

	update := bson.M{}
	if req.UserRating != nil {
		average, count := book.NextRating(*req.UserRating)
		update["average_rating"] = average
		update["ratings_count"] = count
	}
	if req.ImgURL != nil {
		update["img_url"] = *req.ImgURL
	}

	if len(update) == 0 {
		json.NewEncoder(w).Encode(book)
		return
	}

	var updated models.Book
	err = h.BookCollection.FindOneAndUpdate(
		ctx,
		bson.M{"bookID": bookID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		utils.JSONError(w, "Update failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Rate, update)

	json.NewEncoder(w).Encode(updated)
}

type AddBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"image"`
	Pages  int    `json:"pages"`
}

// POST /addbook
//
// The next bookID is max(existing)+1, so two concurrent creations can
// pick the same id. Kept as-is; there is no uniqueness constraint.
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nextID := 1
	var last models.Book
	err := h.BookCollection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "bookID", Value: -1}}),
	).Decode(&last)
	switch {
	case err == nil:
		nextID = last.BookID + 1
	case errors.Is(err, mongo.ErrNoDocuments):
		// first book in an empty catalog
	default:
		utils.JSONError(w, "Failed to allocate book id", http.StatusInternalServerError)
		return
	}

	book := models.Book{
		BookID:   nextID,
		Title:    req.Title,
		Authors:  req.Author,
		ImgURL:   req.Image,
		NumPages: req.Pages,
	}

	if _, err := h.BookCollection.InsertOne(ctx, book); err != nil {
		utils.JSONError(w, "Insert failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Create, book)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(book)
}
