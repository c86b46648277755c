package services

import (
	"strconv"
	"strings"
	"unicode"
)

type EstimatorServiceInterface interface {
	EstimateBaseCost(destination string, duration string) int
	ParseDurationDays(duration string) int
}

type estimatorService struct{}

func NewEstimatorService() EstimatorServiceInterface {
	return &estimatorService{}
}

// Per-day baseline costs keyed by destination substring. Matched in order so
// more specific names can shadow broader ones if ever needed.
var destinationDailyCost = []struct {
	keyword string
	cost    int
}{
	{"pond", 1800},
	{"bang", 2200},
	{"chennai", 1200},
	{"ooty", 3000},
	{"goa", 4000},
}

const defaultDailyCost = 2000

// EstimateBaseCost predicts a minimal per-trip cost from the destination
// keyword table and the parsed trip length. This anchor is fed to the
// planner so its budget verdict stays consistent across requests.
func (s *estimatorService) EstimateBaseCost(destination string, duration string) int {
	days := s.ParseDurationDays(duration)

	dest := strings.ToLower(destination)
	daily := defaultDailyCost
	for _, entry := range destinationDailyCost {
		if strings.Contains(dest, entry.keyword) {
			daily = entry.cost
			break
		}
	}

	return daily * days
}

// ParseDurationDays reads the leading integer of a free-text duration like
// "2 Days" or "3-day trip". Anything unparsable counts as a single day.
func (s *estimatorService) ParseDurationDays(duration string) int {
	trimmed := strings.TrimSpace(duration)

	end := 0
	for end < len(trimmed) && unicode.IsDigit(rune(trimmed[end])) {
		end++
	}
	if end == 0 {
		return 1
	}

	days, err := strconv.Atoi(trimmed[:end])
	if err != nil || days < 1 {
		return 1
	}
	return days
}
