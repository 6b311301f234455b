package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Williamriis/bookshelf-api/internal/constants"
	"github.com/Williamriis/bookshelf-api/internal/models"
	"github.com/Williamriis/bookshelf-api/internal/utils"
)

type UserHandler struct {
	UserCollection *mongo.Collection
	AuditLogger    utils.AuditLogger
}

func NewUserHandler(userColl *mongo.Collection, logger utils.AuditLogger) *UserHandler {
	return &UserHandler{UserCollection: userColl, AuditLogger: logger}
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /createuser
//
// Uniqueness rests on the pre-check alone; there is no index backing it.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !models.ValidUsername(req.Username) {
		utils.JSONError(w, "Username must be 3 to 20 characters long", http.StatusBadRequest)
		return
	}
	if !models.ValidPassword(req.Password) {
		utils.JSONError(w, "Password must be at least 8 characters long", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.UserCollection.FindOne(ctx, bson.M{"username": req.Username}).Err()
	if err == nil {
		utils.JSONError(w, "That username already exists.", http.StatusConflict)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(w, "Failed to check username", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username: req.Username,
		Password: req.Password,
		Ratings:  []int{},
	}

	if _, err := h.UserCollection.InsertOne(ctx, user); err != nil {
		utils.JSONError(w, "Insert failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(ctx, models.UserEntity, constants.Create, user.Username)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User created"})
}

// POST /login
//
// Stateless: no session or token is issued, each login re-verifies the
// exact username/password pair against the collection.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := h.UserCollection.FindOne(ctx, bson.M{
		"username": req.Username,
		"password": req.Password,
	}).Decode(&user)
	if err != nil {
		utils.JSONError(w, "Invalid password or username", http.StatusUnauthorized)
		return
	}

	json.NewEncoder(w).Encode(user)
}
