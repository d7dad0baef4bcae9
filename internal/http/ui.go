package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freewrite-app/freewrite/internal/auth"
	"github.com/freewrite-app/freewrite/internal/library"
)

// UIController serves the reader-facing pages: catalog, book details, and
// chapter reading with previous/next navigation.
type UIController struct {
	library *library.Service
}

func NewUIController(lib *library.Service) *UIController {
	return &UIController{library: lib}
}

// IndexPage renders the public catalog, newest books first.
func (controller *UIController) IndexPage(c *gin.Context) {
	books, err := controller.library.ListBooks()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books")
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Title":       "FreeWrite",
		"Books":       books,
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
	})
}

// DashboardPage renders the signed-in author's books. Anonymous callers are
// redirected to the login page by the route's RequireAuth middleware.
func (controller *UIController) DashboardPage(c *gin.Context) {
	books, err := controller.library.ListBooksByOwner(auth.GetUserID(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading dashboard.")
		return
	}

	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Title":       "Dashboard",
		"Books":       books,
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
		"CSRFToken":   auth.GetCSRFToken(c),
	})
}

// BookPage renders a book with its chapters ordered by number.
func (controller *UIController) BookPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	book, err := controller.library.GetBook(id)
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book")
		return
	}

	chapters, err := controller.library.ListChapters(book.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading book")
		return
	}

	c.HTML(http.StatusOK, "book", gin.H{
		"Title":       book.Title,
		"Book":        book,
		"Chapters":    chapters,
		"IsOwner":     library.IsOwner(auth.GetUserID(c), book),
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
	})
}

// ReadPage renders a chapter with links to its previous and next siblings.
func (controller *UIController) ReadPage(c *gin.Context) {
	id, ok := parseIDParam(c, "chapterId")
	if !ok {
		c.String(http.StatusNotFound, "Chapter not found")
		return
	}

	view, err := controller.library.ReadChapter(id)
	if err != nil {
		if errors.Is(err, library.ErrChapterNotFound) || errors.Is(err, library.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Chapter not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading chapter")
		return
	}

	c.HTML(http.StatusOK, "read", gin.H{
		"Title":       view.Chapter.Title,
		"Chapter":     view.Chapter,
		"Book":        view.Book,
		"PrevChapter": view.Previous,
		"NextChapter": view.Next,
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
	})
}
