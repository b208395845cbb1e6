// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Applicant is the predicate function for applicant builders.
type Applicant func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// EvaluationCourse is the predicate function for evaluationcourse builders.
type EvaluationCourse func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// TranscriptFile is the predicate function for transcriptfile builders.
type TranscriptFile func(*sql.Selector)

// University is the predicate function for university builders.
type University func(*sql.Selector)
