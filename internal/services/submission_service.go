package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dialedbyh/internal/domain"
	applog "dialedbyh/internal/log"
	"dialedbyh/internal/mail"
	"dialedbyh/internal/repos"
	"dialedbyh/internal/validate"
)

// SubmissionRequest is the inbound form payload.
type SubmissionRequest struct {
	Type         string `json:"type"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	WatchDetails string `json:"watchDetails"`
	WatchName    string `json:"watchName"`
	WatchRef     string `json:"watchRef"`
}

// ValidationError is a client-input rejection; its message goes straight into
// the 400 body so callers can tell the reasons apart.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrMissingFields = &ValidationError{msg: "Missing required fields"}
	ErrInvalidType   = &ValidationError{msg: "Invalid submission type"}
	ErrInvalidEmail  = &ValidationError{msg: "Invalid email"}
)

// Result reports both phases of the pipeline: ID reflects the durable insert
// (the primary outcome), EmailSent/EmailID the best-effort notification.
type Result struct {
	ID        string
	EmailSent bool
	EmailID   string
}

type SubmissionService struct {
	Repo        *repos.SubmissionRepo
	Mail        mail.Sender
	NotifyEmail string
}

func NewSubmissionService(repo *repos.SubmissionRepo, sender mail.Sender, notifyEmail string) *SubmissionService {
	return &SubmissionService{Repo: repo, Mail: sender, NotifyEmail: notifyEmail}
}

// Validate gates persistence on structural validity; nothing is written or
// sent when it fails.
func (s *SubmissionService) Validate(req SubmissionRequest) error {
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Email) == "" {
		return ErrMissingFields
	}
	if !domain.ValidSubmissionType(req.Type) {
		return ErrInvalidType
	}
	if _, ok := validate.Email(req.Email); !ok {
		return ErrInvalidEmail
	}
	return nil
}

// Submit runs the persist-then-notify pipeline. An insert failure is fatal
// and no email is attempted; a notification failure is logged and reported
// through the result, never as an error.
func (s *SubmissionService) Submit(req SubmissionRequest) (Result, error) {
	if err := s.Validate(req); err != nil {
		return Result{}, err
	}

	row := domain.Submission{
		ID:           uuid.NewString(),
		Type:         req.Type,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     nullable(req.FullName),
		WatchDetails: nullable(req.WatchDetails),
		WatchName:    nullable(req.WatchName),
		WatchRef:     nullable(req.WatchRef),
		Status:       domain.StatusNew,
	}

	if err := s.Repo.Insert(row); err != nil {
		return Result{}, fmt.Errorf("inserting submission: %w", err)
	}

	res := Result{ID: row.ID}

	tpl, ok := mail.ForSubmission(row)
	if !ok {
		return res, nil
	}

	msgID, err := s.Mail.Send(s.NotifyEmail, tpl.Subject, tpl.Body)
	if err != nil {
		// The row is already durable; the caller just learns the email failed.
		applog.Error(nil, "submission.notify.fail", err, map[string]any{
			"submission_id": row.ID,
			"type":          row.Type,
		})
		return res, nil
	}

	res.EmailSent = true
	res.EmailID = msgID
	return res, nil
}

func nullable(s string) sql.NullString {
	s = validate.Optional(s)
	return sql.NullString{String: s, Valid: s != ""}
}
