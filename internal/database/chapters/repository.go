// Package chapters provides database operations for chapter records.
package chapters

import (
	"errors"

	"gorm.io/gorm"

	"github.com/freewrite-app/freewrite/internal/entities"
)

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapters repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateChapter persists a new chapter. Duplicate numbers within a book are
// accepted; ordering tolerates them.
func (r *Repository) CreateChapter(chapter *entities.Chapter) (*entities.Chapter, error) {
	if err := r.db.Create(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

// GetChapterByID retrieves a chapter by its ID.
func (r *Repository) GetChapterByID(id uint) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.First(&chapter, id).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// GetChaptersForBook retrieves all chapters of a book ordered by number,
// regardless of creation order.
func (r *Repository) GetChaptersForBook(bookID uint) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Where("book_id = ?", bookID).Order("number ASC").Find(&chapters).Error
	return chapters, err
}

// GetChapterByNumber retrieves the chapter of a book with exactly the given
// number, or nil if no such chapter exists. With duplicate numbers the lowest
// ID wins.
func (r *Repository) GetChapterByNumber(bookID uint, number int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.Where("book_id = ? AND number = ?", bookID, number).
		Order("id ASC").First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}

// GetNearestBefore retrieves the chapter with the highest number strictly
// below the given one, or nil if none exists.
func (r *Repository) GetNearestBefore(bookID uint, number int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.Where("book_id = ? AND number < ?", bookID, number).
		Order("number DESC").First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}

// GetNearestAfter retrieves the chapter with the lowest number strictly above
// the given one, or nil if none exists.
func (r *Repository) GetNearestAfter(bookID uint, number int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.Where("book_id = ? AND number > ?", bookID, number).
		Order("number ASC").First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}

// UpdateChapter applies new title, content, and number to a chapter.
// Number uniqueness is deliberately not enforced.
func (r *Repository) UpdateChapter(id uint, title, content string, number int) (*entities.Chapter, error) {
	result := r.db.Model(&entities.Chapter{}).Where("id = ?", id).Updates(map[string]any{
		"title":   title,
		"content": content,
		"number":  number,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetChapterByID(id)
}

// DeleteChaptersForBook removes every chapter belonging to a book.
func (r *Repository) DeleteChaptersForBook(bookID uint) error {
	return r.db.Where("book_id = ?", bookID).Delete(&entities.Chapter{}).Error
}
