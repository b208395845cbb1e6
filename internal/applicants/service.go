package applicants

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/entity"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

// Service handles applicant business logic.
type Service struct {
	applicantRepo repository.ApplicantRepository
	logger        *slog.Logger
}

// NewService creates a new applicant service.
func NewService(applicantRepo repository.ApplicantRepository, logger *slog.Logger) *Service {
	return &Service{
		applicantRepo: applicantRepo,
		logger:        logger,
	}
}

// CreateApplicantRequest represents applicant creation parameters.
type CreateApplicantRequest struct {
	Name          string
	Email         string
	TargetLevel   string
	ResearchAreas string
}

// CreateApplicant creates a new applicant.
func (s *Service) CreateApplicant(ctx context.Context, req CreateApplicantRequest) (*entity.Applicant, error) {
	v := common.NewValidator()
	v.Field("name", req.Name, common.Required)
	v.Field("email", req.Email, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		return nil, status.Error(codes.InvalidArgument, "a valid email is required")
	}

	level := constants.LevelPhD
	if strings.TrimSpace(req.TargetLevel) != "" {
		canon, ok := constants.CanonicalizeLevel(req.TargetLevel)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown target level %q", req.TargetLevel)
		}
		level = canon
	}

	a, err := s.applicantRepo.CreateApplicant(ctx, &repository.Applicant{
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		TargetLevel:   string(level),
		ResearchAreas: strings.TrimSpace(req.ResearchAreas),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create applicant: %v", err)
	}

	s.logger.Info("applicant created successfully", "applicant_id", a.ID, "name", a.Name)
	return utils.ToApplicant(a), nil
}

// GetApplicant returns one applicant by ID.
func (s *Service) GetApplicant(ctx context.Context, id string) (*entity.Applicant, error) {
	applicantID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	a, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "applicant %s: %v", applicantID, err)
	}
	return utils.ToApplicant(a), nil
}

// ListApplicants returns all applicants.
func (s *Service) ListApplicants(ctx context.Context) ([]*entity.Applicant, error) {
	s.logger.Info("listing applicants")

	alist, err := s.applicantRepo.ListApplicants(ctx)
	if err != nil {
		// DB error already logged in repository layer
		return nil, status.Errorf(codes.Internal, "list applicants: %v", err)
	}

	out := make([]*entity.Applicant, 0, len(alist))
	for _, a := range alist {
		out = append(out, utils.ToApplicant(a))
	}
	s.logger.Info("applicants listed successfully", "count", len(out))
	return out, nil
}
