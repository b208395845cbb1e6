package deadlines

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/entity"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

// Service handles university targets and their application deadlines.
type Service struct {
	universityRepo repository.UniversityRepository
	applicantRepo  repository.ApplicantRepository
	logger         *slog.Logger
}

func NewService(universityRepo repository.UniversityRepository, applicantRepo repository.ApplicantRepository, logger *slog.Logger) *Service {
	return &Service{
		universityRepo: universityRepo,
		applicantRepo:  applicantRepo,
		logger:         logger,
	}
}

// AddUniversityRequest represents university creation parameters.
type AddUniversityRequest struct {
	ApplicantID string
	Name        string
	Program     string
	Semester    string // e.g. "Fall 2027"
	Deadline    string // YYYY-MM-DD, local to Timezone; optional
	Timezone    string // UTC offset like "-05:00"; optional
	Status      string // optional, defaults to PLANNING
	Notes       string
}

// AddUniversity registers a target university for an applicant.
func (s *Service) AddUniversity(ctx context.Context, req AddUniversityRequest) (*entity.University, error) {
	v := common.NewValidator()
	v.Field("applicant_id", strings.TrimSpace(req.ApplicantID), common.UUID)
	v.Field("name", req.Name, common.Required)
	v.Field("program", req.Program, common.Required)
	v.Field("semester", req.Semester, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	applicantID, _ := uuid.Parse(strings.TrimSpace(req.ApplicantID))

	sem, err := ParseSemester(req.Semester)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	appStatus := constants.AppStatusPlanning
	if strings.TrimSpace(req.Status) != "" {
		canon, ok := constants.CanonicalizeAppStatus(req.Status)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown application status %q", req.Status)
		}
		appStatus = canon
	}

	var deadline *time.Time
	tz := strings.TrimSpace(req.Timezone)
	if strings.TrimSpace(req.Deadline) != "" {
		loc, err := ParseUTCOffset(tz)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		d, err := utils.ParseYMD(strings.TrimSpace(req.Deadline))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "deadline invalid (YYYY-MM-DD): %v", err)
		}
		// deadlines close at end of day local time
		end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc)
		deadline = &end
	}

	exists, err := s.applicantRepo.Exists(ctx, applicantID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "check applicant: %v", err)
	}
	if !exists {
		return nil, status.Errorf(codes.NotFound, "applicant %s not found", applicantID)
	}

	row, err := s.universityRepo.CreateUniversity(ctx, &repository.University{
		ApplicantID: applicantID,
		Name:        strings.TrimSpace(req.Name),
		Program:     strings.TrimSpace(req.Program),
		Semester:    sem.String(),
		Deadline:    deadline,
		Timezone:    tz,
		Status:      string(appStatus),
		Notes:       strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create university: %v", err)
	}

	s.logger.Info("university added", "university_id", row.ID, "applicant_id", applicantID, "name", row.Name, "semester", sem.String())
	return utils.ToUniversity(row), nil
}

// ListUniversities returns an applicant's universities ordered by semester,
// then by deadline within the same semester.
func (s *Service) ListUniversities(ctx context.Context, applicantID string) ([]*entity.University, error) {
	id, err := uuid.Parse(strings.TrimSpace(applicantID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	rows, err := s.universityRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list universities: %v", err)
	}
	out := make([]*entity.University, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToUniversity(row))
	}
	sortUniversities(out)
	return out, nil
}

// UpcomingDeadlines returns universities whose deadline has not passed,
// soonest first.
func (s *Service) UpcomingDeadlines(ctx context.Context, applicantID string) ([]*entity.University, error) {
	id, err := uuid.Parse(strings.TrimSpace(applicantID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	rows, err := s.universityRepo.ListUpcoming(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list upcoming deadlines: %v", err)
	}
	out := make([]*entity.University, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToUniversity(row))
	}
	return out, nil
}

// UpdateStatus moves a university application to a new status.
func (s *Service) UpdateStatus(ctx context.Context, universityID, newStatus string) (*entity.University, error) {
	id, err := uuid.Parse(strings.TrimSpace(universityID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "university_id must be a UUID")
	}
	canon, ok := constants.CanonicalizeAppStatus(newStatus)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown application status %q", newStatus)
	}
	row, err := s.universityRepo.UpdateStatus(ctx, id, string(canon))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "update status: %v", err)
	}
	s.logger.Info("university status updated", "university_id", id, "status", canon)
	return utils.ToUniversity(row), nil
}

func sortUniversities(rows []*entity.University) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, erri := ParseSemester(rows[i].Semester)
		sj, errj := ParseSemester(rows[j].Semester)
		switch {
		case erri != nil && errj != nil:
			return false
		case erri != nil:
			return false
		case errj != nil:
			return true
		}
		if si != sj {
			return si.Before(sj)
		}
		di, dj := rows[i].Deadline, rows[j].Deadline
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		return di.Before(*dj)
	})
}
