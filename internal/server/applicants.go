package server

import (
	"context"
	"log/slog"

	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/applicants"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

type ApplicantServer struct {
	trackerpb.UnimplementedApplicantsServiceServer
	svc    *applicants.Service
	logger *slog.Logger
}

func NewApplicantServer(svc *applicants.Service, logger *slog.Logger) *ApplicantServer {
	return &ApplicantServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateApplicant creates a new applicant.
func (s *ApplicantServer) CreateApplicant(ctx context.Context, req *trackerpb.CreateApplicantRequest) (*trackerpb.CreateApplicantResponse, error) {
	serviceReq := applicants.CreateApplicantRequest{
		Name:          req.GetName(),
		Email:         req.GetEmail(),
		TargetLevel:   req.GetTargetLevel(),
		ResearchAreas: req.GetResearchAreas(),
	}

	a, err := s.svc.CreateApplicant(ctx, serviceReq)
	if err != nil {
		return nil, err
	}

	return &trackerpb.CreateApplicantResponse{
		Applicant: utils.ToPBApplicant(a),
	}, nil
}

// GetApplicant returns one applicant.
func (s *ApplicantServer) GetApplicant(ctx context.Context, req *trackerpb.GetApplicantRequest) (*trackerpb.GetApplicantResponse, error) {
	a, err := s.svc.GetApplicant(ctx, req.GetApplicantId())
	if err != nil {
		return nil, err
	}
	return &trackerpb.GetApplicantResponse{
		Applicant: utils.ToPBApplicant(a),
	}, nil
}

// ListApplicants lists all applicants.
func (s *ApplicantServer) ListApplicants(ctx context.Context, _ *trackerpb.ListApplicantsRequest) (*trackerpb.ListApplicantsResponse, error) {
	alist, err := s.svc.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*trackerpb.Applicant, 0, len(alist))
	for _, a := range alist {
		out = append(out, utils.ToPBApplicant(a))
	}
	return &trackerpb.ListApplicantsResponse{Applicants: out}, nil
}
