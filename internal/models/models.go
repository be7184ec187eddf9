package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	ID        int            `json:"id" db:"id"`
	UserID    int            `json:"userId" db:"user_id"`
	Title     string         `json:"title" db:"title"`
	Content   string         `json:"content" db:"content"`
	ImageURL  sql.NullString `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`

	// заполняется через JOIN с users
	AuthorName string `json:"authorName" db:"username"`

	// презентационные поля, пересчитываются при каждом чтении
	DisplayDate string `json:"displayDate" db:"-"`
	Preview     string `json:"preview" db:"-"`
}

type Comment struct {
	ID        int       `json:"id" db:"id"`
	PostID    int       `json:"postId" db:"post_id"`
	UserID    int       `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorName  string `json:"authorName" db:"username"`
	DisplayDate string `json:"displayDate" db:"-"`
}
