package model

import "time"

// Donation is a single recorded contribution to a project
type Donation struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	DonorAddress string    `json:"donorAddress"`
	Amount       string    `json:"amount"` // CARES
	CreatedAt    time.Time `json:"createdAt"`
	DateDisplay  string    `json:"dateDisplay,omitempty"`
}

// TopDonor is one leaderboard row
type TopDonor struct {
	Address           string   `json:"id"`
	Display           string   `json:"display,omitempty"`
	TotalDonated      string   `json:"totalDonated"` // CARES
	ProjectsSupported []string `json:"projectsSupported"`
}

// DonationsResponse represents response for GET /donations
type DonationsResponse struct {
	Address   string     `json:"address"`
	Total     string     `json:"total"`
	Donations []Donation `json:"donations"`
}
