// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Salam-35/PhdTrack-sub000/db/ent/schema"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicantFields := schema.Applicant{}.Fields()
	_ = applicantFields
	// applicantDescName is the schema descriptor for name field.
	applicantDescName := applicantFields[1].Descriptor()
	// applicant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	applicant.NameValidator = applicantDescName.Validators[0].(func(string) error)
	// applicantDescEmail is the schema descriptor for email field.
	applicantDescEmail := applicantFields[2].Descriptor()
	// applicant.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	applicant.EmailValidator = applicantDescEmail.Validators[0].(func(string) error)
	// applicantDescTargetLevel is the schema descriptor for target_level field.
	applicantDescTargetLevel := applicantFields[3].Descriptor()
	// applicant.DefaultTargetLevel holds the default value on creation for the target_level field.
	applicant.DefaultTargetLevel = applicantDescTargetLevel.Default.(string)
	// applicant.TargetLevelValidator is a validator for the "target_level" field. It is called by the builders before save.
	applicant.TargetLevelValidator = applicantDescTargetLevel.Validators[0].(func(string) error)
	// applicantDescCreatedAt is the schema descriptor for created_at field.
	applicantDescCreatedAt := applicantFields[5].Descriptor()
	// applicant.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicant.DefaultCreatedAt = applicantDescCreatedAt.Default.(func() time.Time)
	// applicantDescUpdatedAt is the schema descriptor for updated_at field.
	applicantDescUpdatedAt := applicantFields[6].Descriptor()
	// applicant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicant.DefaultUpdatedAt = applicantDescUpdatedAt.Default.(func() time.Time)
	// applicant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicant.UpdateDefaultUpdatedAt = applicantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicantDescID is the schema descriptor for id field.
	applicantDescID := applicantFields[0].Descriptor()
	// applicant.DefaultID holds the default value on creation for the id field.
	applicant.DefaultID = applicantDescID.Default.(func() uuid.UUID)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescInstitution is the schema descriptor for institution field.
	evaluationDescInstitution := evaluationFields[2].Descriptor()
	// evaluation.InstitutionValidator is a validator for the "institution" field. It is called by the builders before save.
	evaluation.InstitutionValidator = evaluationDescInstitution.Validators[0].(func(string) error)
	// evaluationDescLevel is the schema descriptor for level field.
	evaluationDescLevel := evaluationFields[3].Descriptor()
	// evaluation.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	evaluation.LevelValidator = evaluationDescLevel.Validators[0].(func(string) error)
	// evaluationDescGpa is the schema descriptor for gpa field.
	evaluationDescGpa := evaluationFields[4].Descriptor()
	// evaluation.DefaultGpa holds the default value on creation for the gpa field.
	evaluation.DefaultGpa = evaluationDescGpa.Default.(float64)
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[5].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	// evaluationDescUpdatedAt is the schema descriptor for updated_at field.
	evaluationDescUpdatedAt := evaluationFields[6].Descriptor()
	// evaluation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evaluation.DefaultUpdatedAt = evaluationDescUpdatedAt.Default.(func() time.Time)
	// evaluation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evaluation.UpdateDefaultUpdatedAt = evaluationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// evaluationDescID is the schema descriptor for id field.
	evaluationDescID := evaluationFields[0].Descriptor()
	// evaluation.DefaultID holds the default value on creation for the id field.
	evaluation.DefaultID = evaluationDescID.Default.(func() uuid.UUID)
	evaluationcourseFields := schema.EvaluationCourse{}.Fields()
	_ = evaluationcourseFields
	// evaluationcourseDescName is the schema descriptor for name field.
	evaluationcourseDescName := evaluationcourseFields[3].Descriptor()
	// evaluationcourse.NameValidator is a validator for the "name" field. It is called by the builders before save.
	evaluationcourse.NameValidator = evaluationcourseDescName.Validators[0].(func(string) error)
	// evaluationcourseDescCreditHours is the schema descriptor for credit_hours field.
	evaluationcourseDescCreditHours := evaluationcourseFields[5].Descriptor()
	// evaluationcourse.CreditHoursValidator is a validator for the "credit_hours" field. It is called by the builders before save.
	evaluationcourse.CreditHoursValidator = evaluationcourseDescCreditHours.Validators[0].(func(float64) error)
	// evaluationcourseDescIncluded is the schema descriptor for included field.
	evaluationcourseDescIncluded := evaluationcourseFields[6].Descriptor()
	// evaluationcourse.DefaultIncluded holds the default value on creation for the included field.
	evaluationcourse.DefaultIncluded = evaluationcourseDescIncluded.Default.(bool)
	// evaluationcourseDescPosition is the schema descriptor for position field.
	evaluationcourseDescPosition := evaluationcourseFields[7].Descriptor()
	// evaluationcourse.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	evaluationcourse.PositionValidator = evaluationcourseDescPosition.Validators[0].(func(int) error)
	// evaluationcourseDescID is the schema descriptor for id field.
	evaluationcourseDescID := evaluationcourseFields[0].Descriptor()
	// evaluationcourse.DefaultID holds the default value on creation for the id field.
	evaluationcourse.DefaultID = evaluationcourseDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescSource is the schema descriptor for source field.
	extractjobDescSource := extractjobFields[4].Descriptor()
	// extractjob.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	extractjob.SourceValidator = extractjobDescSource.Validators[0].(func(string) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescChunkCount is the schema descriptor for chunk_count field.
	extractjobDescChunkCount := extractjobFields[9].Descriptor()
	// extractjob.DefaultChunkCount holds the default value on creation for the chunk_count field.
	extractjob.DefaultChunkCount = extractjobDescChunkCount.Default.(int)
	// extractjobDescWarningCount is the schema descriptor for warning_count field.
	extractjobDescWarningCount := extractjobFields[10].Descriptor()
	// extractjob.DefaultWarningCount holds the default value on creation for the warning_count field.
	extractjob.DefaultWarningCount = extractjobDescWarningCount.Default.(int)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	transcriptfileFields := schema.TranscriptFile{}.Fields()
	_ = transcriptfileFields
	// transcriptfileDescSourcePath is the schema descriptor for source_path field.
	transcriptfileDescSourcePath := transcriptfileFields[2].Descriptor()
	// transcriptfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	transcriptfile.SourcePathValidator = transcriptfileDescSourcePath.Validators[0].(func(string) error)
	// transcriptfileDescContentHash is the schema descriptor for content_hash field.
	transcriptfileDescContentHash := transcriptfileFields[3].Descriptor()
	// transcriptfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	transcriptfile.ContentHashValidator = transcriptfileDescContentHash.Validators[0].(func([]byte) error)
	// transcriptfileDescFilename is the schema descriptor for filename field.
	transcriptfileDescFilename := transcriptfileFields[4].Descriptor()
	// transcriptfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	transcriptfile.FilenameValidator = transcriptfileDescFilename.Validators[0].(func(string) error)
	// transcriptfileDescFileExt is the schema descriptor for file_ext field.
	transcriptfileDescFileExt := transcriptfileFields[5].Descriptor()
	// transcriptfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	transcriptfile.FileExtValidator = transcriptfileDescFileExt.Validators[0].(func(string) error)
	// transcriptfileDescFileSize is the schema descriptor for file_size field.
	transcriptfileDescFileSize := transcriptfileFields[6].Descriptor()
	// transcriptfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	transcriptfile.FileSizeValidator = transcriptfileDescFileSize.Validators[0].(func(int) error)
	// transcriptfileDescUploadedAt is the schema descriptor for uploaded_at field.
	transcriptfileDescUploadedAt := transcriptfileFields[7].Descriptor()
	// transcriptfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	transcriptfile.DefaultUploadedAt = transcriptfileDescUploadedAt.Default.(func() time.Time)
	// transcriptfileDescID is the schema descriptor for id field.
	transcriptfileDescID := transcriptfileFields[0].Descriptor()
	// transcriptfile.DefaultID holds the default value on creation for the id field.
	transcriptfile.DefaultID = transcriptfileDescID.Default.(func() uuid.UUID)
	universityFields := schema.University{}.Fields()
	_ = universityFields
	// universityDescName is the schema descriptor for name field.
	universityDescName := universityFields[2].Descriptor()
	// university.NameValidator is a validator for the "name" field. It is called by the builders before save.
	university.NameValidator = universityDescName.Validators[0].(func(string) error)
	// universityDescProgram is the schema descriptor for program field.
	universityDescProgram := universityFields[3].Descriptor()
	// university.ProgramValidator is a validator for the "program" field. It is called by the builders before save.
	university.ProgramValidator = universityDescProgram.Validators[0].(func(string) error)
	// universityDescSemester is the schema descriptor for semester field.
	universityDescSemester := universityFields[4].Descriptor()
	// university.SemesterValidator is a validator for the "semester" field. It is called by the builders before save.
	university.SemesterValidator = universityDescSemester.Validators[0].(func(string) error)
	// universityDescStatus is the schema descriptor for status field.
	universityDescStatus := universityFields[7].Descriptor()
	// university.DefaultStatus holds the default value on creation for the status field.
	university.DefaultStatus = universityDescStatus.Default.(string)
	// university.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	university.StatusValidator = universityDescStatus.Validators[0].(func(string) error)
	// universityDescCreatedAt is the schema descriptor for created_at field.
	universityDescCreatedAt := universityFields[9].Descriptor()
	// university.DefaultCreatedAt holds the default value on creation for the created_at field.
	university.DefaultCreatedAt = universityDescCreatedAt.Default.(func() time.Time)
	// universityDescUpdatedAt is the schema descriptor for updated_at field.
	universityDescUpdatedAt := universityFields[10].Descriptor()
	// university.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	university.DefaultUpdatedAt = universityDescUpdatedAt.Default.(func() time.Time)
	// university.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	university.UpdateDefaultUpdatedAt = universityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// universityDescID is the schema descriptor for id field.
	universityDescID := universityFields[0].Descriptor()
	// university.DefaultID holds the default value on creation for the id field.
	university.DefaultID = universityDescID.Default.(func() uuid.UUID)
}
