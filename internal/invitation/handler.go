package invitation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/richieai/onboarding-api/internal/auth"
	"github.com/richieai/onboarding-api/internal/client"
	"github.com/richieai/onboarding-api/internal/httpx"
	"github.com/richieai/onboarding-api/internal/validation"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// POST /clients/manage/invitations
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}

	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClientEmail == "" {
		httpx.Fail(w, http.StatusBadRequest, "Client email is required")
		return
	}

	result, err := h.Service.Issue(r.Context(), IssueParams{
		Advisor:         *identity,
		ClientEmail:     req.ClientEmail,
		ClientFirstName: req.ClientFirstName,
		ClientLastName:  req.ClientLastName,
		Notes:           req.Notes,
	})
	if err != nil {
		var verr validation.Errors
		switch {
		case errors.As(err, &verr):
			httpx.FailWithError(w, http.StatusBadRequest, "Validation Error", verr)
		case errors.Is(err, ErrDuplicateClient):
			httpx.Fail(w, http.StatusBadRequest, "Client already exists in your account")
		case errors.Is(err, ErrQuotaExceeded):
			httpx.Fail(w, http.StatusBadRequest,
				fmt.Sprintf("Maximum of %d invitations reached for this client", h.Service.cfg.MaxInvitations))
		case errors.Is(err, ErrSendFailed):
			httpx.Fail(w, http.StatusInternalServerError, "Failed to send client invitation")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to send client invitation")
		}
		return
	}

	httpx.OK(w,
		fmt.Sprintf("Client invitation sent successfully! (%d/%d invitations used)", result.Count, result.Max),
		issueResponse{
			InvitationID:    result.Invitation.ID,
			ClientEmail:     result.Invitation.ClientEmail,
			ExpiresAt:       result.Invitation.ExpiresAt,
			InvitationURL:   result.URL,
			InvitationCount: result.Count,
			MaxInvitations:  result.Max,
		})
}

type listResponse struct {
	Invitations []listItemDTO    `json:"invitations"`
	Pagination  httpx.Pagination `json:"pagination"`
}

// GET /clients/manage/invitations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.AdvisorFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}

	query := r.URL.Query()
	params := ListParams{
		AdvisorID: identity.ID,
		Status:    query.Get("status"),
		Page:      httpx.QueryInt(r, "page", 1, 1),
		Limit:     httpx.QueryInt(r, "limit", 10, 1),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	invitations, total, err := h.Service.List(r.Context(), params)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to retrieve client invitations")
		return
	}

	items := make([]listItemDTO, 0, len(invitations))
	for i := range invitations {
		items = append(items, toListItem(&invitations[i]))
	}

	httpx.OK(w, "", listResponse{
		Invitations: items,
		Pagination:  httpx.NewPagination(params.Page, params.Limit, total),
	})
}

// GET /clients/onboarding/{token}  (public)
func (h *Handler) PublicFetch(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	inv, err := h.Service.Resolve(r.Context(), token, OpenMeta{
		IP:        httpx.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.writeResolveError(w, err)
		return
	}

	dto := publicFetchDTO{
		Invitation: publicInvitationDTO{
			ID:               inv.ID,
			ClientEmail:      inv.ClientEmail,
			ClientFirstName:  inv.ClientFirstName,
			ClientLastName:   inv.ClientLastName,
			ExpiresAt:        inv.ExpiresAt,
			TimeRemainingSec: int64(inv.TimeRemaining(time.Now()).Seconds()),
		},
	}
	if inv.Advisor != nil {
		dto.Advisor = toAdvisorSummary(inv.Advisor, true)
	}
	httpx.OK(w, "", dto)
}

// POST /clients/onboarding/{token}  (public)
func (h *Handler) PublicSubmit(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var payload client.Client
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.Complete(r.Context(), token, &payload)
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			httpx.FailWithError(w, http.StatusBadRequest, "Validation Error", verr)
			return
		}
		h.writeResolveError(w, err)
		return
	}

	httpx.OK(w, "Client onboarding completed successfully", toCompleteResponse(created))
}

func (h *Handler) writeResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "Invalid invitation link")
	case errors.Is(err, ErrExpired):
		httpx.Fail(w, http.StatusGone, "Invitation link has expired")
	case errors.Is(err, ErrAlreadyCompleted):
		httpx.Fail(w, http.StatusGone, "This invitation has already been completed")
	default:
		httpx.Fail(w, http.StatusInternalServerError, "Failed to access onboarding form")
	}
}
