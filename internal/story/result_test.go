package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeResult(t *testing.T) {
	tests := []struct {
		story, quiz int
		grade       string
		message     string
		xp          int
	}{
		{story: 100, quiz: 100, grade: "A+", message: "Fraud Detection Expert!", xp: 300},
		{story: 80, quiz: 100, grade: "A+", message: "Fraud Detection Expert!", xp: 270},
		{story: 60, quiz: 100, grade: "A", message: "Excellent Awareness!", xp: 240},
		{story: 40, quiz: 100, grade: "B", message: "Good Knowledge!", xp: 210},
		{story: 20, quiz: 100, grade: "C", message: "Keep Learning!", xp: 180},
		{story: 40, quiz: 60, grade: "D", message: "More Practice Needed", xp: 150},
		{story: 0, quiz: 0, grade: "D", message: "More Practice Needed", xp: 0},
	}

	for _, tt := range tests {
		res := ComputeResult(tt.story, tt.quiz)
		assert.Equal(t, tt.grade, res.Grade, "total %d", res.Total)
		assert.Equal(t, tt.message, res.Message)
		assert.Equal(t, tt.xp, res.XP)
		assert.Equal(t, MaxScore, res.MaxScore)
	}
}

func TestComputeResult_Percentage(t *testing.T) {
	res := ComputeResult(40, 100)
	assert.InDelta(t, 70.0, res.Percentage, 1e-9)
	assert.Equal(t, 140, res.Total)

	assert.Equal(t, 22, ComputeResult(15, 0).XP)
}
