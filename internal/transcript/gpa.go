package transcript

import (
	"math"
	"strings"
)

// GradeMap maps a normalized grade token to its grade-point value. It is an
// injected configuration value: callers pass DefaultGradeMap() or a custom
// scale, never a shared mutable global. Tokens absent from the map (P, NP, W,
// I, unknown strings) contribute to neither the GPA numerator nor the
// denominator.
type GradeMap map[string]float64

// DefaultGradeMap is the built-in 4.0 scale covering A+ through F.
func DefaultGradeMap() GradeMap {
	return GradeMap{
		"A+": 4.0,
		"A":  4.0,
		"A-": 3.7,
		"B+": 3.25,
		"B":  3.0,
		"B-": 2.7,
		"C+": 2.25,
		"C":  2.0,
		"C-": 1.7,
		"D+": 1.25,
		"D":  1.0,
		"D-": 0.7,
		"F":  0.0,
	}
}

// ComputeGPA folds a course list into a credit-weighted GPA, rounded to 3
// decimal places. Excluded courses and courses whose grade is not in the map
// are skipped entirely. Zero total credits yields 0, not an error. Pure and
// order-independent.
func ComputeGPA(courses []Course, grades GradeMap) float64 {
	var points, credits float64
	for _, c := range courses {
		if !c.Included {
			continue
		}
		gp, ok := grades[strings.ToUpper(c.Grade)]
		if !ok {
			continue
		}
		points += gp * c.CreditHours
		credits += c.CreditHours
	}
	if credits == 0 {
		return 0
	}
	return math.Round(points/credits*1000) / 1000
}
