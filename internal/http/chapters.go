package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freewrite-app/freewrite/internal/auth"
	"github.com/freewrite-app/freewrite/internal/library"
)

// ChaptersController handles adding and editing chapters.
//
// Denial signals differ by route on purpose: unauthorized access to the
// add-chapter form or submission bounces back to the book page, and the edit
// form bounces to the catalog, while the edit submission itself answers with
// a hard 403.
type ChaptersController struct {
	library *library.Service
}

func NewChaptersController(lib *library.Service) *ChaptersController {
	return &ChaptersController{library: lib}
}

// AddChapterPage renders the add-chapter form for the book's owner.
func (controller *ChaptersController) AddChapterPage(c *gin.Context) {
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

	if !library.IsOwner(auth.GetUserID(c), book) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/book/%d", book.ID))
		return
	}

	c.HTML(http.StatusOK, "add-chapter", gin.H{
		"Title":       "Add chapter",
		"Book":        book,
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
		"CSRFToken":   auth.GetCSRFToken(c),
	})
}

// AddChapter handles the add-chapter form submission. Duplicate chapter
// numbers are accepted without complaint.
func (controller *ChaptersController) AddChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	number, _ := strconv.Atoi(c.PostForm("chapterNumber"))
	input := library.ChapterInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Number:  number,
	}

	_, err := controller.library.AddChapter(auth.GetUserID(c), id, input)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrNotOwner):
			c.Redirect(http.StatusFound, fmt.Sprintf("/book/%d", id))
		case errors.Is(err, library.ErrBookNotFound):
			c.String(http.StatusNotFound, "Book not found")
		case errors.Is(err, library.ErrTitleRequired), errors.Is(err, library.ErrContentRequired):
			c.String(http.StatusBadRequest, "Error saving chapter.")
		default:
			log.Printf("Failed to add chapter to book %d: %v", id, err)
			c.String(http.StatusInternalServerError, "Error saving chapter.")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/book/%d", id))
}

// EditChapterPage renders the edit form for the book's owner. Everyone else
// is sent back to the catalog.
func (controller *ChaptersController) EditChapterPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Chapter not found")
		return
	}

	chapter, book, err := controller.library.GetChapter(id)
	if err != nil {
		if errors.Is(err, library.ErrChapterNotFound) || errors.Is(err, library.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Chapter not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading chapter")
		return
	}

	if !library.IsOwner(auth.GetUserID(c), book) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "edit-chapter", gin.H{
		"Title":       "Edit chapter",
		"Chapter":     chapter,
		"Book":        book,
		"CurrentUser": auth.GetUserID(c),
		"Username":    auth.GetUsername(c),
		"CSRFToken":   auth.GetCSRFToken(c),
	})
}

// EditChapter handles the edit form submission. Unlike every other denial in
// this controller, an unauthorized edit answers 403 instead of redirecting.
func (controller *ChaptersController) EditChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Chapter not found")
		return
	}

	number, _ := strconv.Atoi(c.PostForm("chapterNumber"))
	input := library.ChapterInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Number:  number,
	}

	chapter, err := controller.library.EditChapter(auth.GetUserID(c), id, input)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrNotOwner):
			c.String(http.StatusForbidden, "Unauthorized")
		case errors.Is(err, library.ErrChapterNotFound), errors.Is(err, library.ErrBookNotFound):
			c.String(http.StatusNotFound, "Chapter not found")
		case errors.Is(err, library.ErrTitleRequired), errors.Is(err, library.ErrContentRequired):
			c.String(http.StatusBadRequest, "Error updating chapter.")
		default:
			log.Printf("Failed to update chapter %d: %v", id, err)
			c.String(http.StatusInternalServerError, "Error updating chapter.")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/book/%d", chapter.BookID))
}
