package server

import (
	"context"
	"log/slog"

	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/deadlines"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

type DeadlineServer struct {
	trackerpb.UnimplementedDeadlinesServiceServer
	svc    *deadlines.Service
	logger *slog.Logger
}

func NewDeadlineServer(svc *deadlines.Service, logger *slog.Logger) *DeadlineServer {
	return &DeadlineServer{
		svc:    svc,
		logger: logger,
	}
}

// AddUniversity registers a target university.
func (s *DeadlineServer) AddUniversity(ctx context.Context, req *trackerpb.AddUniversityRequest) (*trackerpb.AddUniversityResponse, error) {
	u, err := s.svc.AddUniversity(ctx, deadlines.AddUniversityRequest{
		ApplicantID: req.GetApplicantId(),
		Name:        req.GetName(),
		Program:     req.GetProgram(),
		Semester:    req.GetSemester(),
		Deadline:    req.GetDeadline(),
		Timezone:    req.GetTimezone(),
		Status:      req.GetStatus(),
		Notes:       req.GetNotes(),
	})
	if err != nil {
		return nil, err
	}
	return &trackerpb.AddUniversityResponse{
		University: utils.ToPBUniversity(u),
	}, nil
}

// ListUniversities lists an applicant's universities in semester order.
func (s *DeadlineServer) ListUniversities(ctx context.Context, req *trackerpb.ListUniversitiesRequest) (*trackerpb.ListUniversitiesResponse, error) {
	rows, err := s.svc.ListUniversities(ctx, req.GetApplicantId())
	if err != nil {
		return nil, err
	}
	out := make([]*trackerpb.University, 0, len(rows))
	for _, u := range rows {
		out = append(out, utils.ToPBUniversity(u))
	}
	return &trackerpb.ListUniversitiesResponse{Universities: out}, nil
}

// UpcomingDeadlines lists universities whose deadline has not passed.
func (s *DeadlineServer) UpcomingDeadlines(ctx context.Context, req *trackerpb.UpcomingDeadlinesRequest) (*trackerpb.UpcomingDeadlinesResponse, error) {
	rows, err := s.svc.UpcomingDeadlines(ctx, req.GetApplicantId())
	if err != nil {
		return nil, err
	}
	out := make([]*trackerpb.University, 0, len(rows))
	for _, u := range rows {
		out = append(out, utils.ToPBUniversity(u))
	}
	return &trackerpb.UpcomingDeadlinesResponse{Universities: out}, nil
}

// UpdateApplicationStatus moves an application to a new status.
func (s *DeadlineServer) UpdateApplicationStatus(ctx context.Context, req *trackerpb.UpdateApplicationStatusRequest) (*trackerpb.UpdateApplicationStatusResponse, error) {
	u, err := s.svc.UpdateStatus(ctx, req.GetUniversityId(), req.GetStatus())
	if err != nil {
		return nil, err
	}
	return &trackerpb.UpdateApplicationStatusResponse{
		University: utils.ToPBUniversity(u),
	}, nil
}
