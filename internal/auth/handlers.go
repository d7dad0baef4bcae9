package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles registration, login, and logout endpoints.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
}

// NewController creates a new authentication controller.
func NewController(service *Service, sessionManager *SessionManager) *Controller {
	return &Controller{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/register", ac.RegisterPage)
	router.POST("/register", ac.Register)
	router.GET("/login", ac.LoginPage)
	router.POST("/login", ac.Login)
	router.GET("/logout", ac.Logout)
}

// RegisterPage renders the registration form.
func (ac *Controller) RegisterPage(c *gin.Context) {
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "register", gin.H{
		"Title":     "Register",
		"CSRFToken": GetCSRFToken(c),
	})
}

// Register handles the registration form submission. A taken username or
// email produces one generic message; which field collided is not disclosed.
func (ac *Controller) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := ac.service.Register(username, email, password)
	if err != nil {
		errorMsg := "Registration error: username or email might be taken."
		switch {
		case errors.Is(err, ErrUsernameRequired),
			errors.Is(err, ErrEmailRequired),
			errors.Is(err, ErrPasswordRequired):
			errorMsg = err.Error()
		case errors.Is(err, ErrUserExists):
			// Keep the generic message
		default:
			log.Printf("Registration failed: %v", err)
		}

		c.HTML(http.StatusOK, "register", gin.H{
			"Title":     "Register",
			"Username":  username,
			"Email":     email,
			"CSRFToken": GetCSRFToken(c),
			"Error":     errorMsg,
		})
		return
	}

	if err := ac.sessionManager.SignIn(c.Request, user); err != nil {
		log.Printf("Failed to create session: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the login form.
func (ac *Controller) LoginPage(c *gin.Context) {
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login", gin.H{
		"Title":     "Login",
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Login handles the login form submission.
func (ac *Controller) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := ac.service.Authenticate(email, password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Printf("Login failed: %v", err)
		}

		c.HTML(http.StatusOK, "login", gin.H{
			"Title":     "Login",
			"Email":     email,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Invalid credentials.",
		})
		return
	}

	if err := ac.sessionManager.SignIn(c.Request, user); err != nil {
		log.Printf("Failed to create session: %v", err)
		c.HTML(http.StatusOK, "login", gin.H{
			"Title":     "Login",
			"Email":     email,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Login error.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session. Logging out while anonymous is a no-op.
func (ac *Controller) Logout(c *gin.Context) {
	if err := ac.sessionManager.SignOut(c.Request); err != nil {
		log.Printf("Failed to destroy session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
