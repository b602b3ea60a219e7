package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type stubUser struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Admin        bool
}

type userRepo struct {
	mu      sync.Mutex
	byEmail map[string]*stubUser
}

func newUserRepo() *userRepo {
	return &userRepo{byEmail: make(map[string]*stubUser)}
}

// seedAdmin registers the well-known development admin account.
func (r *userRepo) seedAdmin() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail["admin@storefront.dev"] = &stubUser{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@storefront.dev",
		PasswordHash: string(hash),
		Admin:        true,
	}
}

func (r *userRepo) create(username, email, password string) (*stubUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, errUserExists
	}

	user := &stubUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	r.byEmail[email] = user
	return user, nil
}

func (r *userRepo) authenticate(email, password string) (*stubUser, error) {
	r.mu.Lock()
	user, ok := r.byEmail[email]
	r.mu.Unlock()

	if !ok {
		return nil, errInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

type authHandler struct {
	users     *userRepo
	jwtSecret string
}

func newAuthHandler(users *userRepo, jwtSecret string) *authHandler {
	return &authHandler{users: users, jwtSecret: jwtSecret}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// login answers POST /user/login with {_id, token, admin}. Note the
// contract gap the client works around: username and email are not
// echoed back.
func (h *authHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.issueToken(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"_id":   user.ID,
		"token": token,
		"admin": user.Admin,
	})
}

// signup answers POST /user/signup with {_id, token}.
func (h *authHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.create(req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.issueToken(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"_id":   user.ID,
		"token": token,
	})
}

func (h *authHandler) issueToken(user *stubUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"admin": user.Admin,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
