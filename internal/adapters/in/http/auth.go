package http

import (
	"errors"
	"net/http"
	"time"

	"fabtrack/internal/adapters/out/postgres/userrepo"
	"fabtrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookieName = "fabtrack_session"
	sessionLifetime   = 24 * time.Hour
)

// sessionClaims is the JWT payload of one authenticated session.
type sessionClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the wire representation of an account.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthServer handles registration, login and session validation. Sessions
// are HS256-signed JWTs carried in an HTTP-only cookie; passwords are stored
// as bcrypt hashes. The order tracking core stays identity-agnostic, the
// middleware only gates route access.
type AuthServer struct {
	users    *userrepo.GormUserRepository
	secret   []byte
	validate *validator.Validate
}

// NewAuthServer creates the authentication collaborator.
func NewAuthServer(users *userrepo.GormUserRepository, secret string) *AuthServer {
	return &AuthServer{
		users:    users,
		secret:   []byte(secret),
		validate: validator.New(),
	}
}

// Register handles POST /api/v1/auth/register - creates an account.
func (a *AuthServer) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := a.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	user := userrepo.UserDTO{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err = a.users.Create(ctx.Request().Context(), &user); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login handles POST /api/v1/auth/login - verifies credentials and sets the
// session cookie. Wrong email and wrong password are indistinguishable to
// the caller.
func (a *AuthServer) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := a.validate.Struct(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	user, err := a.users.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return a.unauthorized(ctx)
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return a.unauthorized(ctx)
	}

	token, err := a.issueToken(user.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Me handles GET /api/v1/auth/me - returns the authenticated account.
func (a *AuthServer) Me(ctx echo.Context) error {
	userID, ok := ctx.Get(userIDContextKey).(int64)
	if !ok {
		return a.unauthorized(ctx)
	}

	user, err := a.users.GetByID(ctx.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return a.unauthorized(ctx)
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

const userIDContextKey = "userID"

// Middleware validates the session cookie and stores the account identity in
// the request context.
func (a *AuthServer) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(sessionCookieName)
		if err != nil {
			return a.unauthorized(ctx)
		}

		claims, err := a.parseToken(cookie.Value)
		if err != nil {
			return a.unauthorized(ctx)
		}

		ctx.Set(userIDContextKey, claims.UserID)
		return next(ctx)
	}
}

func (a *AuthServer) issueToken(userID int64) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fabtrack",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *AuthServer) parseToken(raw string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func (a *AuthServer) unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}
