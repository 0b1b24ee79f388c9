package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/share-a-care/internal/common"
)

// Project is a fundraising project listed on the dashboard
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	FundingGoal     string    `json:"fundingGoal"`   // CARES
	CurrentAmount   string    `json:"currentAmount"` // CARES
	SupportersCount int       `json:"supportersCount"`
	TopDonor        string    `json:"topDonor,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProjectInput represents request body for POST/PUT admin/projects
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	FundingGoal string `json:"fundingGoal"`
}

// Validate validates ProjectInput fields.
func (p *ProjectInput) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	goal, err := common.CARESToMicro(p.FundingGoal)
	if err != nil {
		return fmt.Errorf("invalid fundingGoal: %w", err)
	}
	if goal == 0 {
		return fmt.Errorf("fundingGoal must be greater than zero")
	}
	return nil
}

// ProjectView is a project with the derived values the dashboard renders
type ProjectView struct {
	Project
	FundedPercent   float64  `json:"fundedPercent"`
	GoalDisplay     string   `json:"goalDisplay"`
	RaisedDisplay   string   `json:"raisedDisplay"`
	TopDonorDisplay string   `json:"topDonorDisplay,omitempty"`
	DonationOptions []uint64 `json:"donationOptions"`
}
