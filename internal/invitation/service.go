package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/richieai/onboarding-api/internal/auth"
	"github.com/richieai/onboarding-api/internal/client"
	"github.com/richieai/onboarding-api/internal/httpx"
	"github.com/richieai/onboarding-api/internal/notifier"
	"github.com/richieai/onboarding-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrDuplicateClient  = errors.New("client already exists for this advisor")
	ErrQuotaExceeded    = errors.New("maximum invitations reached for this client")
	ErrNotFound         = errors.New("invitation not found")
	ErrExpired          = errors.New("invitation has expired")
	ErrAlreadyCompleted = errors.New("invitation has already been completed")
	ErrSendFailed       = errors.New("failed to send invitation email")
)

// Config is the lifecycle policy, resolved once at construction.
type Config struct {
	TTL            time.Duration
	MaxInvitations int64
	PortalBaseURL  string
}

// Service owns the invitation lifecycle: issuance, transitions, expiry and
// quota enforcement.
type Service struct {
	db          *gorm.DB
	invitations Repository
	clients     client.Repository
	notifier    notifier.Notifier
	cfg         Config
}

func NewService(db *gorm.DB, invitations Repository, clients client.Repository, n notifier.Notifier, cfg Config) *Service {
	return &Service{db: db, invitations: invitations, clients: clients, notifier: n, cfg: cfg}
}

// IssueParams describe one advisor-initiated invitation.
type IssueParams struct {
	Advisor         auth.Identity
	ClientEmail     string
	ClientFirstName string
	ClientLastName  string
	Notes           string
}

// IssueResult carries the created record and the quota position.
type IssueResult struct {
	Invitation *Invitation
	URL        string
	Count      int64
	Max        int64
}

// Issue creates a new invitation and dispatches the email. The quota counts
// every invitation ever issued for the (advisor, email) pair, including
// expired and completed ones. A notifier failure surfaces as ErrSendFailed
// and leaves the record in "created" for a manual retry; it still counts
// against the quota.
func (s *Service) Issue(ctx context.Context, p IssueParams) (*IssueResult, error) {
	log := httpx.Logger(ctx)
	db := s.db.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(p.ClientEmail))
	if !validation.Email(email) {
		return nil, validation.Errors{{Field: "clientEmail", Message: "Please enter a valid email"}}
	}

	exists, err := s.clients.ExistsForAdvisor(db, p.Advisor.ID, email)
	if err != nil {
		return nil, fmt.Errorf("check existing client: %w", err)
	}
	if exists {
		log.Warn("invitation rejected, client already exists", "advisor_id", p.Advisor.ID, "client_email", email)
		return nil, ErrDuplicateClient
	}

	count, err := s.invitations.CountForPair(db, p.Advisor.ID, email)
	if err != nil {
		return nil, fmt.Errorf("count invitations: %w", err)
	}
	if count >= s.cfg.MaxInvitations {
		log.Warn("invitation rejected, quota reached",
			"advisor_id", p.Advisor.ID, "client_email", email, "count", count, "max", s.cfg.MaxInvitations)
		return nil, ErrQuotaExceeded
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &Invitation{
		ClientEmail:     email,
		ClientFirstName: p.ClientFirstName,
		ClientLastName:  p.ClientLastName,
		Notes:           p.Notes,
		AdvisorID:       p.Advisor.ID,
		Token:           token,
		ExpiresAt:       now.Add(s.cfg.TTL),
		Status:          StatusCreated,
		Source:          SourceManual,
	}
	if err := s.invitations.Create(db, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	result := &IssueResult{
		Invitation: inv,
		URL:        s.InvitationURL(token),
		Count:      count + 1,
		Max:        s.cfg.MaxInvitations,
	}

	clientName := strings.TrimSpace(p.ClientFirstName + " " + p.ClientLastName)
	subject, html, err := notifier.InvitationEmail(notifier.InvitationEmailData{
		AdvisorName:   p.Advisor.FirstName + " " + p.Advisor.LastName,
		FirmName:      p.Advisor.FirmName,
		ClientName:    clientName,
		InvitationURL: result.URL,
		ExpiryHours:   int(s.cfg.TTL.Hours()),
	})
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if err := s.notifier.Send(ctx, email, clientName, subject, html); err != nil {
		log.Error("invitation email delivery failed", "invitation_id", inv.ID, "error", err)
		return result, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := s.MarkSent(ctx, inv); err != nil {
		return result, err
	}

	log.Info("invitation sent",
		"invitation_id", inv.ID, "advisor_id", p.Advisor.ID, "client_email", email,
		"count", result.Count, "max", result.Max)
	return result, nil
}

// MarkSent transitions created to sent. Idempotent when already sent.
func (s *Service) MarkSent(ctx context.Context, inv *Invitation) error {
	return s.invitations.MarkSent(s.db.WithContext(ctx), inv)
}

// OpenMeta records who first opened the invitation.
type OpenMeta struct {
	IP        string
	UserAgent string
}

// Resolve looks up an invitation by token and applies the access checks:
// unknown tokens fail with ErrNotFound, anything past its expiry with
// ErrExpired, completed records with ErrAlreadyCompleted. The first
// resolution of a sent invitation transitions it to opened and records the
// requester metadata; later resolutions return the record unchanged.
func (s *Service) Resolve(ctx context.Context, token string, meta OpenMeta) (*Invitation, error) {
	db := s.db.WithContext(ctx)

	inv, err := s.invitations.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup invitation: %w", err)
	}

	if err := s.checkAccessible(inv, time.Now()); err != nil {
		return nil, err
	}

	if inv.Status == StatusSent {
		if err := s.invitations.MarkOpened(db, inv, meta.IP, meta.UserAgent, time.Now()); err != nil {
			return nil, fmt.Errorf("mark invitation opened: %w", err)
		}
		httpx.Logger(ctx).Info("invitation opened", "invitation_id", inv.ID, "ip", meta.IP)
	}
	return inv, nil
}

// Complete re-runs the Resolve validations, then claims the invitation and
// creates the client record inside one transaction. The conditional claim is
// the commit point: concurrent submissions on the same token produce exactly
// one client.
func (s *Service) Complete(ctx context.Context, token string, payload *client.Client) (*client.Client, error) {
	db := s.db.WithContext(ctx)

	inv, err := s.invitations.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup invitation: %w", err)
	}
	if err := s.checkAccessible(inv, time.Now()); err != nil {
		return nil, err
	}

	// Ownership and identity come from the invitation, never the payload.
	payload.ID = 0
	payload.Email = inv.ClientEmail
	payload.AdvisorID = inv.AdvisorID
	payload.Status = client.StatusOnboarding
	payload.LastActiveDate = time.Now()

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.invitations.ClaimCompletion(tx, inv.ID, time.Now())
		if err != nil {
			return fmt.Errorf("claim invitation: %w", err)
		}
		if !claimed {
			return ErrAlreadyCompleted
		}
		if err := s.clients.Create(tx, payload); err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		return s.invitations.SetClient(tx, inv.ID, payload.ID)
	})
	if err != nil {
		return nil, err
	}

	httpx.Logger(ctx).Info("invitation completed",
		"invitation_id", inv.ID, "client_id", payload.ID, "advisor_id", inv.AdvisorID)
	return payload, nil
}

// CountForPair exposes the quota counter.
func (s *Service) CountForPair(ctx context.Context, advisorID uint, clientEmail string) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(clientEmail))
	return s.invitations.CountForPair(s.db.WithContext(ctx), advisorID, email)
}

// List returns the advisor's invitations with pagination.
func (s *Service) List(ctx context.Context, p ListParams) ([]Invitation, int64, error) {
	return s.invitations.List(s.db.WithContext(ctx), p)
}

// InvitationURL embeds the token into the public onboarding link.
func (s *Service) InvitationURL(token string) string {
	return strings.TrimRight(s.cfg.PortalBaseURL, "/") + "/onboarding/" + token
}

func (s *Service) checkAccessible(inv *Invitation, now time.Time) error {
	if inv.IsExpired(now) {
		return ErrExpired
	}
	if inv.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	return nil
}
