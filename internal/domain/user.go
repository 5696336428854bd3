package domain

import "time"

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterUserInput struct {
	Username string
	Password string
	Email    string
	FullName string
}
