package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/export"
)

type ExportServer struct {
	trackerpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportEvaluation(ctx context.Context, req *trackerpb.ExportEvaluationRequest) (*trackerpb.ExportEvaluationResponse, error) {
	id := strings.TrimSpace(req.GetEvaluationId())
	evalID, err := uuid.Parse(id)
	if err != nil || id == "" {
		return nil, common.InvalidArgumentError("evaluation_id must be a UUID")
	}

	xlsx, err := s.svc.ExportEvaluationXLSX(ctx, evalID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "evaluation_id", id, "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &trackerpb.ExportEvaluationResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportUniversities(ctx context.Context, req *trackerpb.ExportUniversitiesRequest) (*trackerpb.ExportUniversitiesResponse, error) {
	id := strings.TrimSpace(req.GetApplicantId())
	applicantID, err := uuid.Parse(id)
	if err != nil || id == "" {
		return nil, common.InvalidArgumentError("applicant_id must be a UUID")
	}

	xlsx, err := s.svc.ExportUniversitiesXLSX(ctx, applicantID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "applicant_id", id, "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &trackerpb.ExportUniversitiesResponse{Xlsx: xlsx}, nil
}
