package transcript

// RawCourse is one record as emitted by the extraction model, before any
// cleanup. Field values are untrusted.
type RawCourse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Grade       string  `json:"grade"`
	CreditHours float64 `json:"credit_hours"`
}

// Course is a cleaned course record. Included controls whether the course
// participates in GPA aggregation; it is client-editable and defaults to true.
type Course struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Grade       string  `json:"grade"`
	CreditHours float64 `json:"credit_hours"`
	Included    bool    `json:"included"`
}
