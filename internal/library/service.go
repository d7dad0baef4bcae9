// Package library implements the content-ownership and navigation core:
// who owns a book, who may mutate it, how chapters are sequenced, and how a
// book and its chapters are removed together.
//
// Every operation takes the requester's user ID explicitly. There is no
// ambient session state here, so ownership checks are pure functions of
// (requester, record).
package library

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/freewrite-app/freewrite/internal/config"
	"github.com/freewrite-app/freewrite/internal/database/books"
	"github.com/freewrite-app/freewrite/internal/database/chapters"
	"github.com/freewrite-app/freewrite/internal/database/users"
	"github.com/freewrite-app/freewrite/internal/entities"
)

var (
	ErrAuthRequired    = errors.New("authentication required")
	ErrNotOwner        = errors.New("requester does not own this book")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrBookNotFound    = errors.New("book not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

// AnonymousAuthor is the display name used when the owner has no username.
const AnonymousAuthor = "Anonymous"

// Service coordinates book and chapter lifecycle on top of the repositories.
type Service struct {
	users      *users.Repository
	books      *books.Repository
	chapters   *chapters.Repository
	chapterNav config.ChapterNavMode
}

// NewService creates a new library service. navMode selects how the read
// operation resolves previous/next chapters; the zero value falls back to
// exact matching.
func NewService(userRepo *users.Repository, bookRepo *books.Repository, chapterRepo *chapters.Repository, navMode config.ChapterNavMode) *Service {
	if navMode == "" {
		navMode = config.ChapterNavExact
	}
	return &Service{
		users:      userRepo,
		books:      bookRepo,
		chapters:   chapterRepo,
		chapterNav: navMode,
	}
}

// IsOwner is the single ownership predicate applied before every book or
// chapter mutation. An anonymous requester never owns anything.
func IsOwner(requesterID uint, book *entities.Book) bool {
	return requesterID != 0 && requesterID == book.UserID
}

// BookInput carries the fields of a book creation request.
type BookInput struct {
	Title       string
	Genre       string
	Description string
	CoverImage  string
}

// ChapterInput carries the fields of a chapter create or edit request.
type ChapterInput struct {
	Title   string
	Content string
	Number  int
}

// ReadView is the data handed to the read page: a chapter, its book, and the
// neighbouring chapters, if any.
type ReadView struct {
	Chapter  *entities.Chapter
	Book     *entities.Book
	Previous *entities.Chapter
	Next     *entities.Chapter
}

// CreateBook creates a book owned by the requester. The author display name
// is a snapshot of the owner's username at creation time; renaming the user
// later does not touch existing books.
func (s *Service) CreateBook(requesterID uint, input BookInput) (*entities.Book, error) {
	if requesterID == 0 {
		return nil, ErrAuthRequired
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	owner, err := s.users.GetUserByID(requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	author := owner.Username
	if author == "" {
		author = AnonymousAuthor
	}

	book := &entities.Book{
		Title:       input.Title,
		Author:      author,
		Genre:       input.Genre,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		UserID:      owner.ID,
	}

	return s.books.CreateBook(book)
}

// GetBook retrieves a book by ID.
func (s *Service) GetBook(id uint) (*entities.Book, error) {
	book, err := s.books.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// ListBooks returns the public catalog, newest first.
func (s *Service) ListBooks() ([]entities.Book, error) {
	return s.books.GetAllBooks()
}

// ListBooksByOwner returns the requester's books, newest first.
func (s *Service) ListBooksByOwner(requesterID uint) ([]entities.Book, error) {
	return s.books.GetBooksForUser(requesterID)
}

// ListChapters returns all chapters of a book ordered by chapter number.
func (s *Service) ListChapters(bookID uint) ([]entities.Chapter, error) {
	return s.chapters.GetChaptersForBook(bookID)
}

// AddChapter appends a chapter to a book the requester owns. Duplicate
// chapter numbers are accepted silently; no renumbering happens.
func (s *Service) AddChapter(requesterID, bookID uint, input ChapterInput) (*entities.Chapter, error) {
	book, err := s.GetBook(bookID)
	if err != nil {
		return nil, err
	}
	if !IsOwner(requesterID, book) {
		return nil, ErrNotOwner
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Content == "" {
		return nil, ErrContentRequired
	}

	chapter := &entities.Chapter{
		BookID:  book.ID,
		Title:   input.Title,
		Content: input.Content,
		Number:  input.Number,
	}

	return s.chapters.CreateChapter(chapter)
}

// GetChapter retrieves a chapter together with its parent book.
func (s *Service) GetChapter(chapterID uint) (*entities.Chapter, *entities.Book, error) {
	chapter, err := s.chapters.GetChapterByID(chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrChapterNotFound
		}
		return nil, nil, err
	}

	book, err := s.GetBook(chapter.BookID)
	if err != nil {
		return nil, nil, err
	}

	return chapter, book, nil
}

// EditChapter applies new title, content, and number to a chapter of a book
// the requester owns. Number uniqueness is not validated.
func (s *Service) EditChapter(requesterID, chapterID uint, input ChapterInput) (*entities.Chapter, error) {
	chapter, book, err := s.GetChapter(chapterID)
	if err != nil {
		return nil, err
	}
	if !IsOwner(requesterID, book) {
		return nil, ErrNotOwner
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Content == "" {
		return nil, ErrContentRequired
	}

	return s.chapters.UpdateChapter(chapter.ID, input.Title, input.Content, input.Number)
}

// ReadChapter loads a chapter, its book, and its previous/next siblings.
//
// In the default exact mode the neighbours are the chapters numbered exactly
// one below and one above; with numbering gaps both can be absent even
// though earlier or later chapters exist. The nearest mode bridges gaps by
// resolving the closest lower and higher numbers instead.
func (s *Service) ReadChapter(chapterID uint) (*ReadView, error) {
	chapter, book, err := s.GetChapter(chapterID)
	if err != nil {
		return nil, err
	}

	var previous, next *entities.Chapter
	if s.chapterNav == config.ChapterNavNearest {
		previous, err = s.chapters.GetNearestBefore(book.ID, chapter.Number)
		if err != nil {
			return nil, err
		}
		next, err = s.chapters.GetNearestAfter(book.ID, chapter.Number)
		if err != nil {
			return nil, err
		}
	} else {
		previous, err = s.chapters.GetChapterByNumber(book.ID, chapter.Number-1)
		if err != nil {
			return nil, err
		}
		next, err = s.chapters.GetChapterByNumber(book.ID, chapter.Number+1)
		if err != nil {
			return nil, err
		}
	}

	return &ReadView{
		Chapter:  chapter,
		Book:     book,
		Previous: previous,
		Next:     next,
	}, nil
}

// DeleteBook removes a book and all its chapters on behalf of the owner.
//
// The two deletions are sequential, not one transaction: chapters go first
// and must have succeeded before the book row is touched. A crash in between
// leaves orphan chapters pointing at a gone book, which readers simply never
// reach. The reverse residue, a deleted book whose chapters still point at a
// live-looking ID, cannot occur.
func (s *Service) DeleteBook(requesterID, bookID uint) error {
	book, err := s.GetBook(bookID)
	if err != nil {
		return err
	}
	if !IsOwner(requesterID, book) {
		return ErrNotOwner
	}

	if err := s.chapters.DeleteChaptersForBook(book.ID); err != nil {
		return fmt.Errorf("failed to delete chapters: %w", err)
	}

	if err := s.books.DeleteBook(book.ID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}
