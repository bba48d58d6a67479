package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseStatusCanTransition(t *testing.T) {
	allowed := []struct {
		from CaseStatus
		to   CaseStatus
	}{
		{CaseDraft, CasePendingReview},
		{CasePendingReview, CaseDraft},
		{CasePendingReview, CaseActive},
		{CaseActive, CaseFunded},
		{CaseActive, CaseClosed},
		{CaseFunded, CaseClosed},
		{CaseActive, CaseActive},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from CaseStatus
		to   CaseStatus
	}{
		{CaseDraft, CaseActive},
		{CaseDraft, CaseFunded},
		{CaseActive, CaseDraft},
		{CaseFunded, CaseActive},
		{CaseClosed, CaseActive},
		{CaseClosed, CaseDraft},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be forbidden", tc.from, tc.to)
	}
}

func TestCaseIsFunded(t *testing.T) {
	assert.True(t, Case{TargetAmount: 100, CollectedAmount: 100}.IsFunded())
	assert.True(t, Case{TargetAmount: 100, CollectedAmount: 150}.IsFunded())
	assert.False(t, Case{TargetAmount: 100, CollectedAmount: 99}.IsFunded())
}

func TestCaseAcceptsContributions(t *testing.T) {
	assert.True(t, Case{Status: CaseActive}.AcceptsContributions())
	assert.False(t, Case{Status: CaseDraft}.AcceptsContributions())
	assert.False(t, Case{Status: CaseFunded}.AcceptsContributions())
	assert.False(t, Case{Status: CaseClosed}.AcceptsContributions())
}

func TestValidateCaseStatuses(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		statuses, err := ValidateCaseStatuses([]string{"draft", "active"})
		assert.NoError(t, err)
		assert.Equal(t, []CaseStatus{CaseDraft, CaseActive}, statuses)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := ValidateCaseStatuses([]string{"draft", "bogus"})
		assert.ErrorIs(t, err, BadParameterError)
	})
}
