package constants

import "strings"

// ApplicationStatus tracks where a university application stands.
type ApplicationStatus string

const (
	AppStatusPlanning   ApplicationStatus = "PLANNING"
	AppStatusInProgress ApplicationStatus = "IN_PROGRESS"
	AppStatusSubmitted  ApplicationStatus = "SUBMITTED"
	AppStatusInterview  ApplicationStatus = "INTERVIEW"
	AppStatusAccepted   ApplicationStatus = "ACCEPTED"
	AppStatusRejected   ApplicationStatus = "REJECTED"
	AppStatusWithdrawn  ApplicationStatus = "WITHDRAWN"
)

var allAppStatuses = []ApplicationStatus{
	AppStatusPlanning,
	AppStatusInProgress,
	AppStatusSubmitted,
	AppStatusInterview,
	AppStatusAccepted,
	AppStatusRejected,
	AppStatusWithdrawn,
}

func AppStatusesAsStringSlice() []string {
	result := make([]string, len(allAppStatuses))
	for i, s := range allAppStatuses {
		result[i] = string(s)
	}
	return result
}

// CanonicalizeAppStatus maps free-form status labels onto the enum.
func CanonicalizeAppStatus(input string) (ApplicationStatus, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for _, s := range allAppStatuses {
		if normalized == string(s) {
			return s, true
		}
	}
	return "", false
}
