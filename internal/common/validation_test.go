package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := common.NewValidator()
	v.Field("name", "", common.Required).
		Field("applicant_id", "not-a-uuid", common.UUID).
		Field("grade", "A+", common.GradeLabel)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "name")
	assert.Contains(t, v.ErrorMessage(), "applicant_id")
}

func TestValidatorPasses(t *testing.T) {
	v := common.NewValidator()
	v.Field("name", "Ada Lovelace", common.Required).
		Field("applicant_id", "6b1e0dbd-9091-4a40-b6a3-9e6a09b3c2f1", common.UUID)

	assert.False(t, v.HasErrors())
	assert.NoError(t, common.ValidateAndReturnError(v))
}

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		grade string
		ok    bool
	}{
		{"A", true},
		{"B+", true},
		{"C-", true},
		{"NP", true},
		{"W", true},
		{"", true}, // empty grades are allowed, they just don't count toward GPA
		{"4.0 GPA", false},
		{"AAA", false},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			err := common.GradeLabel("grade", tt.grade)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestMaxLength(t *testing.T) {
	assert.Nil(t, common.MaxLength("notes", "short", 10))
	assert.NotNil(t, common.MaxLength("notes", "this is far too long", 10))
}
