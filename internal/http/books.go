package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freewrite-app/freewrite/internal/auth"
	"github.com/freewrite-app/freewrite/internal/library"
)

// BooksController handles book creation and deletion.
type BooksController struct {
	library *library.Service
}

func NewBooksController(lib *library.Service) *BooksController {
	return &BooksController{library: lib}
}

// WritePage renders the book creation form.
func (controller *BooksController) WritePage(c *gin.Context) {
	c.HTML(http.StatusOK, "write", gin.H{
		"Title":       "Start a new book",
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
		"CSRFToken":   auth.GetCSRFToken(c),
	})
}

// CreateBook handles the book creation form submission.
func (controller *BooksController) CreateBook(c *gin.Context) {
	input := library.BookInput{
		Title:       c.PostForm("title"),
		Genre:       c.PostForm("genre"),
		Description: c.PostForm("description"),
		CoverImage:  c.PostForm("image"),
	}

	_, err := controller.library.CreateBook(auth.GetUserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrAuthRequired):
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, library.ErrTitleRequired):
			c.HTML(http.StatusOK, "write", gin.H{
				"Title":       "Start a new book",
				"CurrentUser": auth.GetUserID(c),
				"Username":    auth.GetUsername(c),
				"CSRFToken":   auth.GetCSRFToken(c),
				"Error":       "A title is required.",
			})
		default:
			log.Printf("Failed to create book: %v", err)
			c.String(http.StatusInternalServerError, "Error creating book.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteBook removes a book and every chapter in it. Chapters are wiped
// before the book row so a failure in between never strands chapters under a
// book that still appears to exist. Non-owners are bounced to the dashboard
// with nothing deleted.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	err := controller.library.DeleteBook(auth.GetUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrNotOwner):
			c.Redirect(http.StatusFound, "/dashboard")
		case errors.Is(err, library.ErrBookNotFound):
			c.String(http.StatusNotFound, "Book not found")
		default:
			log.Printf("Failed to delete book %d: %v", id, err)
			c.String(http.StatusInternalServerError, "Error deleting book.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
