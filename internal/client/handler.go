package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/richieai/onboarding-api/internal/auth"
	"github.com/richieai/onboarding-api/internal/httpx"
	"github.com/richieai/onboarding-api/internal/validation"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type listResponse struct {
	Clients    []Client         `json:"clients"`
	Pagination httpx.Pagination `json:"pagination"`
}

// GET /clients/manage
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}

	query := r.URL.Query()
	params := ListParams{
		AdvisorID: identity.ID,
		Search:    query.Get("search"),
		Status:    query.Get("status"),
		Page:      httpx.QueryInt(r, "page", 1, 1),
		Limit:     httpx.QueryInt(r, "limit", 10, 1),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	clients, total, err := h.Repository.List(h.DB, params)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	if clients == nil {
		clients = []Client{}
	}

	httpx.OK(w, "", listResponse{
		Clients:    clients,
		Pagination: httpx.NewPagination(params.Page, params.Limit, total),
	})
}

// GET /clients/manage/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Client not found")
		return
	}

	c, err := h.Repository.FindForAdvisor(h.DB, identity.ID, uint(id))
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Client not found")
		return
	}
	httpx.OK(w, "", c)
}

// PUT /clients/manage/{id}
//
// The request body is merged onto the stored record; the advisor reference
// is immutable and restored after the merge.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Client not found")
		return
	}

	c, err := h.Repository.FindForAdvisor(h.DB, identity.ID, uint(id))
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Client not found")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(c); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.ID = uint(id)
	c.AdvisorID = identity.ID

	if err := c.Validate(); err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			httpx.FailWithError(w, http.StatusBadRequest, "Validation Error", verr)
			return
		}
		httpx.Fail(w, http.StatusBadRequest, "Validation Error")
		return
	}

	c.LastActiveDate = time.Now()
	if err := h.Repository.Save(h.DB, c); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to update client")
		return
	}

	httpx.Logger(r.Context()).Info("client updated", "client_id", c.ID, "advisor_id", identity.ID)
	httpx.OK(w, "Client updated successfully", c)
}

// DELETE /clients/manage/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "Client not found")
		return
	}

	if err := h.Repository.Delete(h.DB, identity.ID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Fail(w, http.StatusNotFound, "Client not found")
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	httpx.Logger(r.Context()).Info("client deleted", "client_id", id, "advisor_id", identity.ID)
	httpx.OK(w, "Client deleted successfully", nil)
}
