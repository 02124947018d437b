package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	"github.com/BruksfildServices01/barber-schedule/internal/config"
	"github.com/BruksfildServices01/barber-schedule/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-schedule/internal/infra/repository"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

type AuthHandler struct {
	accounts *infraRepo.AccountGormRepository
	audit    *audit.Dispatcher
	config   *config.Config
	log      *slog.Logger
}

func NewAuthHandler(
	accounts *infraRepo.AccountGormRepository,
	audit *audit.Dispatcher,
	cfg *config.Config,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{accounts: accounts, audit: audit, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username             string `json:"username" binding:"required"`
	Password             string `json:"password" binding:"required,min=6"`
	ConfirmationPassword string `json:"confirmation_password" binding:"required"`
	FirstName            string `json:"first_name" binding:"required"`
	LastName             string `json:"last_name" binding:"required"`
	PhoneNumber          string `json:"phone_number"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Password != req.ConfirmationPassword {
		httperr.BadRequest(c, "password_mismatch", "As senhas não conferem.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if err := barber.ValidateRegistration(username, firstName, lastName); err != nil {
		writeError(c, h.log, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	user := &models.User{
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hashed),
	}
	b := &models.Barber{PhoneNumber: strings.TrimSpace(req.PhoneNumber)}

	if err := h.accounts.CreateBarber(c.Request.Context(), user, b); err != nil {
		writeError(c, h.log, err)
		return
	}

	token, err := h.generateToken(b)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		BarberID: &b.ID,
		Action:   audit.ActionBarberRegistered,
		Entity:   audit.EntityBarber,
	})

	c.JSON(http.StatusCreated, gin.H{
		"barber": barberView(b),
		"token":  token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	b, err := h.accounts.FindByUsername(c.Request.Context(), username)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(b.User.PasswordHash), []byte(req.Password)); err != nil {
		writeError(c, h.log, infraRepo.ErrInvalidCredentials)
		return
	}

	token, err := h.generateToken(b)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": barberView(b),
		"token":  token,
	})
}

// ProviderRef resolves a username to the barber reference used by the
// confirmation endpoint.
func (h *AuthHandler) ProviderRef(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Query("username")))
	if username == "" {
		httperr.BadRequest(c, "missing_username", "Nome de usuário obrigatório.")
		return
	}

	b, err := h.accounts.FindByUsername(c.Request.Context(), username)
	if errors.Is(err, infraRepo.ErrInvalidCredentials) {
		writeError(c, h.log, domain.ErrProviderNotFound)
		return
	}
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"informations": []gin.H{barberView(b)}})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(b *models.Barber) (string, error) {
	now := time.Now()
	ttl := h.config.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub": b.ID.String(),
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func barberView(b *models.Barber) gin.H {
	return gin.H{
		"id":           b.User.ID,
		"ref":          b.ID,
		"username":     b.User.Username,
		"display_name": b.DisplayName(),
		"first_name":   b.User.FirstName,
		"last_name":    b.User.LastName,
		"phone_number": b.PhoneNumber,
	}
}
