package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/share-a-care/internal/common"
)

// CarePackage is a reward unlocked once a donor passes Threshold
type CarePackage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Threshold   string    `json:"threshold"` // CARES
	Eligibility string    `json:"eligibility,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CarePackageInput represents request body for POST/PUT admin/care-packages
type CarePackageInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Threshold   string `json:"threshold"`
	Eligibility string `json:"eligibility"`
	Image       string `json:"image"`
}

// Validate validates CarePackageInput fields.
func (c *CarePackageInput) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := common.CARESToMicro(c.Threshold); err != nil {
		return fmt.Errorf("invalid threshold: %w", err)
	}
	return nil
}
