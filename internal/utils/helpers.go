package utils

import (
	"time"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBApplicant(a *entity.Applicant) *trackerpb.Applicant {
	return &trackerpb.Applicant{
		Id:            a.ID.String(),
		Name:          a.Name,
		Email:         a.Email,
		TargetLevel:   a.TargetLevel,
		ResearchAreas: strOrEmpty(a.ResearchAreas),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBEvaluation(e *entity.Evaluation) *trackerpb.Evaluation {
	return &trackerpb.Evaluation{
		Id:          e.ID.String(),
		ApplicantId: e.ApplicantID.String(),
		Institution: e.Institution,
		Level:       e.Level,
		Gpa:         e.GPA,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCourse(c *entity.EvaluationCourse) *trackerpb.Course {
	return &trackerpb.Course{
		Id:          c.ID.String(),
		Code:        c.Code,
		Name:        c.Name,
		Grade:       c.Grade,
		CreditHours: c.CreditHours,
		Included:    c.Included,
	}
}

func ToPBUniversity(u *entity.University) *trackerpb.University {
	deadline := ""
	if u.Deadline != nil {
		deadline = u.Deadline.UTC().Format(time.RFC3339)
	}
	return &trackerpb.University{
		Id:          u.ID.String(),
		ApplicantId: u.ApplicantID.String(),
		Name:        u.Name,
		Program:     u.Program,
		Semester:    u.Semester,
		Deadline:    deadline,
		Timezone:    strOrEmpty(u.Timezone),
		Status:      u.Status,
		Notes:       strOrEmpty(u.Notes),
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExtractJob(j *entity.ExtractJob) *trackerpb.ExtractJob {
	out := &trackerpb.ExtractJob{
		Id:           j.ID.String(),
		ApplicantId:  j.ApplicantID.String(),
		Source:       j.Source,
		Status:       strOrEmpty(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		ChunkCount:   int32(j.ChunkCount),
		WarningCount: int32(j.WarningCount),
		ModelName:    strOrEmpty(j.ModelName),
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FileID != nil {
		out.FileId = j.FileID.String()
	}
	if j.EvaluationID != nil {
		out.EvaluationId = j.EvaluationID.String()
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToApplicant(e *ent.Applicant) *entity.Applicant {
	return &entity.Applicant{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		TargetLevel:   e.TargetLevel,
		ResearchAreas: e.ResearchAreas,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToEvaluation(e *ent.Evaluation) *entity.Evaluation {
	return &entity.Evaluation{
		ID:          e.ID,
		ApplicantID: e.ApplicantID,
		Institution: e.Institution,
		Level:       e.Level,
		GPA:         e.Gpa,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCourse(e *ent.EvaluationCourse) *entity.EvaluationCourse {
	return &entity.EvaluationCourse{
		ID:           e.ID,
		EvaluationID: e.EvaluationID,
		Code:         e.Code,
		Name:         e.Name,
		Grade:        e.Grade,
		CreditHours:  e.CreditHours,
		Included:     e.Included,
		Position:     e.Position,
	}
}

func ToUniversity(e *ent.University) *entity.University {
	return &entity.University{
		ID:          e.ID,
		ApplicantID: e.ApplicantID,
		Name:        e.Name,
		Program:     e.Program,
		Semester:    e.Semester,
		Deadline:    e.Deadline,
		Timezone:    e.Timezone,
		Status:      e.Status,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTranscriptFile(e *ent.TranscriptFile) *entity.TranscriptFile {
	return &entity.TranscriptFile{
		ID:          e.ID,
		ApplicantID: e.ApplicantID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		ApplicantID:   e.ApplicantID,
		FileID:        e.FileID,
		EvaluationID:  e.EvaluationID,
		Source:        e.Source,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		ChunkCount:    e.ChunkCount,
		WarningCount:  e.WarningCount,
		Warnings:      e.Warnings,
		ExtractedJSON: e.ExtractedJSON,
		ModelName:     e.ModelName,
	}
}
