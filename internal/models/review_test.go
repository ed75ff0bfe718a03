package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewDerivedStatus(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		tags     []string
		want     ReviewStatus
	}{
		{"verified is approved", true, nil, ReviewApproved},
		{"verified wins over flagged tag", true, []string{"flagged"}, ReviewApproved},
		{"flagged tag flags", false, []string{"flagged"}, ReviewFlagged},
		{"flagged among other tags", false, []string{"trek", "flagged"}, ReviewFlagged},
		{"no tags is pending", false, []string{}, ReviewPending},
		{"unrelated tags are pending", false, []string{"family", "winter"}, ReviewPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Review{Verified: tt.verified, Tags: tt.tags}
			assert.Equal(t, tt.want, r.DerivedStatus())
		})
	}
}

func TestReviewTargetType(t *testing.T) {
	guideID := uint(7)
	destinationID := uint(3)

	guideReview := &Review{GuideID: &guideID}
	assert.Equal(t, "guide", guideReview.TargetType())

	destinationReview := &Review{DestinationID: &destinationID}
	assert.Equal(t, "destination", destinationReview.TargetType())
}
