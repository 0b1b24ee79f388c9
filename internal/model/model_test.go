package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      ProjectInput
		wantErr bool
	}{
		{"valid", ProjectInput{Title: "Clinic", FundingGoal: "1500.5"}, false},
		{"blank title", ProjectInput{Title: "  ", FundingGoal: "10"}, true},
		{"zero goal", ProjectInput{Title: "Clinic", FundingGoal: "0"}, true},
		{"bad goal", ProjectInput{Title: "Clinic", FundingGoal: "ten"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCarePackageInput_Validate(t *testing.T) {
	assert.NoError(t, (&CarePackageInput{Name: "Starter", Threshold: "0"}).Validate())
	assert.Error(t, (&CarePackageInput{Name: "", Threshold: "10"}).Validate())
	assert.Error(t, (&CarePackageInput{Name: "Starter", Threshold: "-5"}).Validate())
}
