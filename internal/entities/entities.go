package entities

import (
	"time"
)

// User is a registered account. Credentials are stored as a bcrypt hash;
// the raw password never reaches the database.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Book is a top-level authored work owned by exactly one user.
// Author is a snapshot of the owner's username taken at creation time; it is
// deliberately denormalized and does not follow later username changes.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:512;not null" json:"title"`
	Author      string    `gorm:"size:100;default:'Anonymous'" json:"author"`
	Genre       string    `gorm:"size:100" json:"genre,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CoverImage  string    `gorm:"size:2048" json:"cover_image,omitempty"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Chapter is an ordered content unit under a book. Number is the display
// ordering key; duplicates and gaps within one book are tolerated.
type Chapter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	Title     string    `gorm:"size:512;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Number    int       `gorm:"index" json:"number"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (Chapter) TableName() string {
	return "chapters"
}
