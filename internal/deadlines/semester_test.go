package deadlines_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/deadlines"
)

func TestParseSemester(t *testing.T) {
	tests := []struct {
		label   string
		want    deadlines.Semester
		wantErr bool
	}{
		{label: "Fall 2027", want: deadlines.Semester{Term: deadlines.TermFall, Year: 2027}},
		{label: "spring 2026", want: deadlines.Semester{Term: deadlines.TermSpring, Year: 2026}},
		{label: "Autumn 2026", want: deadlines.Semester{Term: deadlines.TermFall, Year: 2026}},
		{label: "Summer, 2028", want: deadlines.Semester{Term: deadlines.TermSummer, Year: 2028}},
		{label: "  Fall 2027  ", want: deadlines.Semester{Term: deadlines.TermFall, Year: 2027}},
		{label: "Winter 2027", wantErr: true},
		{label: "Fall", wantErr: true},
		{label: "2027", wantErr: true},
		{label: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := deadlines.ParseSemester(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemesterOrdering(t *testing.T) {
	spring27 := deadlines.Semester{Term: deadlines.TermSpring, Year: 2027}
	summer27 := deadlines.Semester{Term: deadlines.TermSummer, Year: 2027}
	fall27 := deadlines.Semester{Term: deadlines.TermFall, Year: 2027}
	spring28 := deadlines.Semester{Term: deadlines.TermSpring, Year: 2028}

	assert.True(t, spring27.Before(summer27))
	assert.True(t, summer27.Before(fall27))
	assert.True(t, fall27.Before(spring28))
	assert.False(t, fall27.Before(fall27))
	assert.False(t, spring28.Before(fall27))
}

func TestSemesterString(t *testing.T) {
	s := deadlines.Semester{Term: deadlines.TermFall, Year: 2027}
	assert.Equal(t, "Fall 2027", s.String())
}

func TestParseUTCOffset(t *testing.T) {
	tests := []struct {
		offset  string
		wantSec int
		wantErr bool
	}{
		{offset: "", wantSec: 0},
		{offset: "UTC", wantSec: 0},
		{offset: "Z", wantSec: 0},
		{offset: "-05:00", wantSec: -5 * 3600},
		{offset: "+09:30", wantSec: 9*3600 + 30*60},
		{offset: "+00:00", wantSec: 0},
		{offset: "-15:00", wantErr: true},
		{offset: "05:00", wantErr: true},
		{offset: "-5:00", wantErr: true},
		{offset: "America/New_York", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			loc, err := deadlines.ParseUTCOffset(tt.offset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, sec := time.Date(2027, 1, 15, 12, 0, 0, 0, loc).Zone()
			assert.Equal(t, tt.wantSec, sec)
		})
	}
}
