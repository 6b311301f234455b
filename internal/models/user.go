package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"password"` // stored in the clear, observed contract
	Ratings        []int              `bson:"ratings" json:"ratings"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
}

const (
	UserEntity = "user"

	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 8
)

func ValidUsername(username string) bool {
	return len(username) >= UsernameMinLength && len(username) <= UsernameMaxLength
}

func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
