package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	evalRepo       repository.EvaluationRepository
	universityRepo repository.UniversityRepository
	logger         *slog.Logger
}

func NewService(evalRepo repository.EvaluationRepository, universityRepo repository.UniversityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{evalRepo: evalRepo, universityRepo: universityRepo, logger: logger}
}

// ExportEvaluationXLSX returns an XLSX workbook (as bytes) with one sheet of
// course rows and a GPA summary for the given evaluation.
func (s *Service) ExportEvaluationXLSX(ctx context.Context, evaluationID uuid.UUID) ([]byte, error) {
	eval, err := s.evalRepo.GetByID(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load evaluation: %w", err)
	}
	courses, err := s.evalRepo.ListCourses(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Courses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Code", "Course", "Grade", "Credit Hours", "Included"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	var totalCredits float64
	for _, c := range courses {
		write(1, row, c.Code)
		write(2, row, c.Name)
		write(3, row, c.Grade)
		write(4, row, c.CreditHours)
		if c.Included {
			write(5, row, "yes")
			totalCredits += c.CreditHours
		} else {
			write(5, row, "no")
		}
		row++
	}

	// summary block below the course rows
	row++
	write(1, row, "Institution")
	write(2, row, eval.Institution)
	row++
	write(1, row, "Level")
	write(2, row, eval.Level)
	row++
	write(1, row, "Credit Hours Counted")
	write(2, row, totalCredits)
	row++
	write(1, row, "GPA")
	write(2, row, eval.Gpa)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("evaluation exported", "evaluation_id", evaluationID, "courses", len(courses), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// ExportUniversitiesXLSX returns an XLSX workbook (as bytes) listing an
// applicant's target universities and deadlines.
func (s *Service) ExportUniversitiesXLSX(ctx context.Context, applicantID uuid.UUID) ([]byte, error) {
	rows, err := s.universityRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("load universities: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Universities"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"University", "Program", "Semester", "Deadline", "Timezone", "Status", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	for _, u := range rows {
		write(1, row, u.Name)
		write(2, row, u.Program)
		write(3, row, u.Semester)
		if u.Deadline != nil {
			write(4, row, u.Deadline.Format("2006-01-02"))
		} else {
			write(4, row, "")
		}
		if u.Timezone != nil {
			write(5, row, *u.Timezone)
		}
		write(6, row, u.Status)
		if u.Notes != nil {
			write(7, row, *u.Notes)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("universities exported", "applicant_id", applicantID, "rows", len(rows), "bytes", buf.Len())
	return buf.Bytes(), nil
}
