package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreJob_TrackSkillAndFallback(t *testing.T) {
	profile := MatchProfile{
		Skills:          []string{"react", "css"},
		CareerTrack:     "web-development",
		ExperienceLevel: "entry level",
	}
	job := MatchJob{
		RequiredSkills: []string{"React", "Node.js"},
		CareerTrack:    "web-development",
	}

	result := ScoreJob(profile, job)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, []string{"react"}, result.MatchedSkills)
	assert.Len(t, result.Reasons, 3)
}

func TestScoreJob_NoOverlapScoresZero(t *testing.T) {
	profile := MatchProfile{
		Skills:          []string{"cooking"},
		CareerTrack:     "culinary",
		ExperienceLevel: "grandmaster",
	}
	job := MatchJob{
		RequiredSkills:  []string{"React", "Go"},
		CareerTrack:     "web-development",
		ExperienceLevel: "senior",
	}

	result := ScoreJob(profile, job)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.Reasons)
}

func TestScoreJob_SkillPointsCappedAtFifty(t *testing.T) {
	skills := []string{"go", "react", "css", "html", "sql", "docker", "kubernetes"}
	profile := MatchProfile{Skills: skills}
	job := MatchJob{RequiredSkills: skills}

	result := ScoreJob(profile, job)

	assert.Equal(t, 50, result.Score)
	assert.Len(t, result.MatchedSkills, 7)
	// Reason names only the first three skills.
	assert.Contains(t, result.Reasons[0], "go, react, css...")
}

func TestScoreJob_BoundedAtOneHundred(t *testing.T) {
	profile := MatchProfile{
		Skills:          []string{"go", "react", "css", "html", "sql", "docker"},
		CareerTrack:     "web-development",
		ExperienceLevel: "entry level student",
	}
	job := MatchJob{
		RequiredSkills:  []string{"go", "react", "css", "html", "sql", "docker"},
		CareerTrack:     "web-development",
		ExperienceLevel: "entry-level",
	}

	result := ScoreJob(profile, job)

	assert.Equal(t, 100, result.Score)
}

func TestScoreJob_ExactExperienceMatch(t *testing.T) {
	profile := MatchProfile{ExperienceLevel: "junior, 1-3 years"}
	job := MatchJob{ExperienceLevel: "junior"}

	result := ScoreJob(profile, job)

	assert.Equal(t, 20, result.Score)
	assert.Contains(t, result.Reasons, "Suitable for junior level")
}

func TestScoreJob_FallbackForMismatchedEarlyCareerJob(t *testing.T) {
	profile := MatchProfile{ExperienceLevel: "senior"}
	job := MatchJob{ExperienceLevel: "entry-level"}

	result := ScoreJob(profile, job)

	assert.Equal(t, 10, result.Score)
}

func TestScoreJob_UnsetJobLevelFallbackForEarlyCareer(t *testing.T) {
	profile := MatchProfile{ExperienceLevel: "entry level"}
	job := MatchJob{}

	result := ScoreJob(profile, job)

	assert.Equal(t, 10, result.Score)
	assert.Contains(t, result.Reasons, "Entry/junior level position")
}

func TestScoreJob_StatedSeniorJobEarnsNoExperiencePoints(t *testing.T) {
	profile := MatchProfile{ExperienceLevel: "entry level"}
	job := MatchJob{ExperienceLevel: "senior"}

	result := ScoreJob(profile, job)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)
}

func TestScoreJob_EmptyCandidateLevelNoExperiencePoints(t *testing.T) {
	profile := MatchProfile{ExperienceLevel: ""}
	job := MatchJob{ExperienceLevel: "entry-level"}

	result := ScoreJob(profile, job)

	assert.Equal(t, 0, result.Score)
}

func TestScoreJob_TrackReasonPresentOnlyWithBonus(t *testing.T) {
	withBonus := ScoreJob(
		MatchProfile{CareerTrack: "Data-Science"},
		MatchJob{CareerTrack: "data-science"},
	)
	assert.Equal(t, 30, withBonus.Score)
	assert.Len(t, withBonus.Reasons, 1)

	withoutBonus := ScoreJob(
		MatchProfile{CareerTrack: "data-science"},
		MatchJob{CareerTrack: "design"},
	)
	assert.Equal(t, 0, withoutBonus.Score)
	assert.Empty(t, withoutBonus.Reasons)
}

func TestScoreJob_ContainmentBothDirections(t *testing.T) {
	// Candidate skill contained in the required skill.
	r1 := ScoreJob(MatchProfile{Skills: []string{"react"}}, MatchJob{RequiredSkills: []string{"React.js"}})
	assert.Equal(t, 10, r1.Score)

	// Required skill contained in the candidate skill.
	r2 := ScoreJob(MatchProfile{Skills: []string{"React.js"}}, MatchJob{RequiredSkills: []string{"react"}})
	assert.Equal(t, 10, r2.Score)
}
