package applicants_test

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
	"github.com/Salam-35/PhdTrack-sub000/internal/applicants"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
)

type fakeApplicantRepo struct {
	created *repository.Applicant
	row     *ent.Applicant
	err     error
}

func (f *fakeApplicantRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Applicant, error) {
	if f.row == nil || f.row.ID != id {
		return nil, errors.New("not found")
	}
	return f.row, f.err
}

func (f *fakeApplicantRepo) CreateApplicant(_ context.Context, a *repository.Applicant) (*ent.Applicant, error) {
	f.created = a
	if f.err != nil {
		return nil, f.err
	}
	return &ent.Applicant{
		ID:          uuid.New(),
		Name:        a.Name,
		Email:       a.Email,
		TargetLevel: a.TargetLevel,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

func (f *fakeApplicantRepo) ListApplicants(context.Context) ([]*ent.Applicant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.row == nil {
		return nil, nil
	}
	return []*ent.Applicant{f.row}, nil
}

func (f *fakeApplicantRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.row != nil && f.row.ID == id, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateApplicant_MissingFieldsRejected(t *testing.T) {
	repo := &fakeApplicantRepo{}
	svc := applicants.NewService(repo, testLogger())

	_, err := svc.CreateApplicant(context.Background(), applicants.CreateApplicantRequest{
		Name:  "  ",
		Email: "",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "name")
	assert.Contains(t, st.Message(), "email")
	assert.Nil(t, repo.created)
}

func TestCreateApplicant_BadEmailRejected(t *testing.T) {
	svc := applicants.NewService(&fakeApplicantRepo{}, testLogger())

	_, err := svc.CreateApplicant(context.Background(), applicants.CreateApplicantRequest{
		Name:  "Ada",
		Email: "not-an-address",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestCreateApplicant_DefaultsToPhD(t *testing.T) {
	repo := &fakeApplicantRepo{}
	svc := applicants.NewService(repo, testLogger())

	a, err := svc.CreateApplicant(context.Background(), applicants.CreateApplicantRequest{
		Name:  "  Ada Lovelace  ",
		Email: "ada@example.edu",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Ada Lovelace", repo.created.Name)
	assert.Equal(t, "PHD", repo.created.TargetLevel)

	assert.Equal(t, "Ada Lovelace", a.Name)
	assert.Equal(t, "ada@example.edu", a.Email)
	assert.NotEqual(t, uuid.Nil, a.ID)
}

func TestGetApplicant_BadIDRejected(t *testing.T) {
	svc := applicants.NewService(&fakeApplicantRepo{}, testLogger())

	_, err := svc.GetApplicant(context.Background(), "not-a-uuid")
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
