package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBaseCost(t *testing.T) {
	svc := NewEstimatorService()

	tests := []struct {
		name        string
		destination string
		duration    string
		expected    int
	}{
		{"pondicherry two days", "Pondicherry", "2 Days", 3600},
		{"bangalore three days", "Bangalore", "3 Days", 6600},
		{"chennai single day", "Chennai", "1 Day", 1200},
		{"ooty weekend", "Ooty hills", "2 days", 6000},
		{"goa week", "North Goa", "7 days", 28000},
		{"unknown destination uses default", "Hampi", "2 Days", 4000},
		{"keyword match is case-insensitive", "PONDICHERRY", "2 Days", 3600},
		{"unparsable duration counts as one day", "Chennai", "a weekend", 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.EstimateBaseCost(tt.destination, tt.duration))
		})
	}
}

func TestParseDurationDays(t *testing.T) {
	svc := NewEstimatorService()

	tests := []struct {
		input    string
		expected int
	}{
		{"2 Days", 2},
		{"3-day trip", 3},
		{"10 days", 10},
		{"  5 nights ", 5},
		{"Days 2", 1},
		{"", 1},
		{"0 days", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, svc.ParseDurationDays(tt.input), "input %q", tt.input)
	}
}
