package transport

import "github.com/google/uuid"

// ReportRequest contains the phone number being flagged.
type ReportRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phonenum"`
}

// StatusRequest carries the phone number for a spam status lookup.
type StatusRequest struct {
	PhoneNumber string `form:"phoneNumber" validate:"required,phonenum"`
}

// ReportDetails echoes the stored report in the response.
type ReportDetails struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	ReportedAt  string    `json:"reportedAt"`
}

// ReportResponse is returned after a successful report.
type ReportResponse struct {
	Message          string        `json:"message"`
	SpamReport       ReportDetails `json:"spamReport"`
	TotalSpamReports int           `json:"totalSpamReports"`
}

// StatusResponse describes how spammy a phone number currently looks.
type StatusResponse struct {
	PhoneNumber    string `json:"phoneNumber"`
	SpamReports    int    `json:"spamReports"`
	SpamLikelihood int    `json:"spamLikelihood"`
	IsSpam         bool   `json:"isSpam"`
}
