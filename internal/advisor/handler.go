package advisor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/richieai/onboarding-api/internal/auth"
	"github.com/richieai/onboarding-api/internal/httpx"
	"github.com/richieai/onboarding-api/internal/validation"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Tokens     *auth.Manager
}

func NewHandler(db *gorm.DB, tokens *auth.Manager) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Tokens: tokens}
}

type authResponse struct {
	Token   string     `json:"token"`
	Advisor SummaryDTO `json:"advisor"`
}

// POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var verr validation.Errors
	if req.FirstName == "" {
		verr = verr.Add("firstName", "First name is required")
	}
	if req.LastName == "" {
		verr = verr.Add("lastName", "Last name is required")
	}
	if !validation.Email(req.Email) {
		verr = verr.Add("email", "Please enter a valid email")
	}
	if len(req.Password) < 8 {
		verr = verr.Add("password", "Password must be at least 8 characters")
	}
	if err := verr.OrNil(); err != nil {
		httpx.FailWithError(w, http.StatusBadRequest, "Validation Error", err)
		return
	}

	if _, err := h.Repository.FindByEmail(h.DB, req.Email); err == nil {
		httpx.Fail(w, http.StatusBadRequest, "Advisor already exists with this email")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	a := &Advisor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		FirmName:  req.FirmName,
		Status:    StatusActive,
	}
	if err := h.Repository.Create(h.DB, a); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := h.Tokens.Generate(a.ID)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	httpx.Logger(r.Context()).Info("advisor registered", "advisor_id", a.ID)
	httpx.Created(w, "Advisor registered successfully", authResponse{Token: token, Advisor: toSummary(a)})
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Fail(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	a, err := h.Repository.FindByEmail(h.DB, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		httpx.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !auth.CheckPassword(a.Password, req.Password) {
		httpx.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if a.Status != StatusActive {
		httpx.Fail(w, http.StatusUnauthorized, "Account is not active. Please contact support.")
		return
	}

	token, err := h.Tokens.Generate(a.ID)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	httpx.Logger(r.Context()).Info("advisor logged in", "advisor_id", a.ID)
	httpx.OK(w, "Login successful", authResponse{Token: token, Advisor: toSummary(a)})
}

// GET /auth/profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}

	a, err := h.Repository.FindByID(h.DB, identity.ID)
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Advisor not found")
		return
	}
	httpx.OK(w, "", toSummary(a))
}

// POST /auth/logout
//
// Stateless tokens carry their own expiry; there is nothing to revoke
// server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, "Logout successful", nil)
}
