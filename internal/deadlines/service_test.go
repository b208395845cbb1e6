package deadlines_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/internal/deadlines"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
)

type fakeUniversityRepo struct {
	created *repository.University
	rows    []*ent.University
	err     error
}

func (f *fakeUniversityRepo) GetByID(context.Context, uuid.UUID) (*ent.University, error) {
	return nil, errors.New("not found")
}

func (f *fakeUniversityRepo) CreateUniversity(_ context.Context, u *repository.University) (*ent.University, error) {
	f.created = u
	if f.err != nil {
		return nil, f.err
	}
	return &ent.University{
		ID:          uuid.New(),
		ApplicantID: u.ApplicantID,
		Name:        u.Name,
		Program:     u.Program,
		Semester:    u.Semester,
		Deadline:    u.Deadline,
		Status:      u.Status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

func (f *fakeUniversityRepo) ListByApplicant(context.Context, uuid.UUID) ([]*ent.University, error) {
	return f.rows, f.err
}

func (f *fakeUniversityRepo) ListUpcoming(context.Context, uuid.UUID, time.Time) ([]*ent.University, error) {
	return f.rows, f.err
}

func (f *fakeUniversityRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*ent.University, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ent.University{ID: id, Status: status}, nil
}

func (f *fakeUniversityRepo) SetDeadline(_ context.Context, id uuid.UUID, deadline time.Time, _ string) (*ent.University, error) {
	return &ent.University{ID: id, Deadline: &deadline}, f.err
}

type fakeExistsRepo struct {
	exists bool
	err    error
}

func (f *fakeExistsRepo) GetByID(context.Context, uuid.UUID) (*ent.Applicant, error) {
	return nil, errors.New("not found")
}
func (f *fakeExistsRepo) CreateApplicant(context.Context, *repository.Applicant) (*ent.Applicant, error) {
	return nil, errors.New("unexpected")
}
func (f *fakeExistsRepo) ListApplicants(context.Context) ([]*ent.Applicant, error) {
	return nil, nil
}
func (f *fakeExistsRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return f.exists, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validAddRequest() deadlines.AddUniversityRequest {
	return deadlines.AddUniversityRequest{
		ApplicantID: uuid.NewString(),
		Name:        "MIT",
		Program:     "EECS",
		Semester:    "autumn 2027",
		Deadline:    "2027-12-01",
		Timezone:    "-05:00",
	}
}

func TestAddUniversity_MissingProgramRejected(t *testing.T) {
	svc := deadlines.NewService(&fakeUniversityRepo{}, &fakeExistsRepo{exists: true}, testLogger())

	req := validAddRequest()
	req.Program = "  "
	_, err := svc.AddUniversity(context.Background(), req)
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "program")
}

func TestAddUniversity_ApplicantCheckErrorIsInternal(t *testing.T) {
	svc := deadlines.NewService(
		&fakeUniversityRepo{},
		&fakeExistsRepo{err: errors.New("connection refused")},
		testLogger(),
	)

	_, err := svc.AddUniversity(context.Background(), validAddRequest())
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestAddUniversity_UnknownApplicantIsNotFound(t *testing.T) {
	svc := deadlines.NewService(&fakeUniversityRepo{}, &fakeExistsRepo{exists: false}, testLogger())

	_, err := svc.AddUniversity(context.Background(), validAddRequest())
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestAddUniversity_DeadlineClosesEndOfLocalDay(t *testing.T) {
	repo := &fakeUniversityRepo{}
	svc := deadlines.NewService(repo, &fakeExistsRepo{exists: true}, testLogger())

	u, err := svc.AddUniversity(context.Background(), validAddRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Fall 2027", repo.created.Semester)
	require.NotNil(t, u.Deadline)
	// 23:59:59 at UTC-5 on Dec 1
	assert.Equal(t, time.Date(2027, 12, 2, 4, 59, 59, 0, time.UTC), u.Deadline.UTC())
	assert.Equal(t, "PLANNING", u.Status)
}
