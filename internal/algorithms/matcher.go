package algorithms

import (
	"fmt"
	"strings"
)

// MatchProfile is the candidate-side input to the scorer.
type MatchProfile struct {
	Skills          []string
	CareerTrack     string
	ExperienceLevel string
}

// MatchJob is the job-side input to the scorer.
type MatchJob struct {
	RequiredSkills  []string
	CareerTrack     string
	ExperienceLevel string
}

// MatchResult carries the score with human-readable reasons. Never
// persisted; computed fresh for every matched-jobs listing.
type MatchResult struct {
	Score         int
	Reasons       []string
	MatchedSkills []string
}

const (
	careerTrackPoints  = 30
	pointsPerSkill     = 10
	maxSkillPoints     = 50
	experienceExact    = 20
	experienceFallback = 10
	maxSkillsInReason  = 3
)

// ScoreJob computes the 0-100 match score for one candidate/job pair.
// Pure function: same inputs always give the same result.
func ScoreJob(profile MatchProfile, job MatchJob) MatchResult {
	result := MatchResult{}

	track := strings.ToLower(strings.TrimSpace(profile.CareerTrack))
	jobTrack := strings.ToLower(strings.TrimSpace(job.CareerTrack))
	if track != "" && jobTrack != "" && track == jobTrack {
		result.Score += careerTrackPoints
		result.Reasons = append(result.Reasons, "Matches your preferred career track: "+job.CareerTrack)
	}

	jobSkills := make([]string, 0, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		jobSkills = append(jobSkills, strings.ToLower(strings.TrimSpace(s)))
	}

	for _, raw := range profile.Skills {
		skill := strings.ToLower(strings.TrimSpace(raw))
		if skill == "" {
			continue
		}
		for _, jobSkill := range jobSkills {
			if jobSkill == "" {
				continue
			}
			// Containment in either direction: "react" matches
			// "React.js" and vice versa.
			if strings.Contains(jobSkill, skill) || strings.Contains(skill, jobSkill) {
				result.MatchedSkills = append(result.MatchedSkills, skill)
				break
			}
		}
	}

	if len(result.MatchedSkills) > 0 {
		skillPoints := len(result.MatchedSkills) * pointsPerSkill
		if skillPoints > maxSkillPoints {
			skillPoints = maxSkillPoints
		}
		result.Score += skillPoints

		shown := result.MatchedSkills
		suffix := ""
		if len(shown) > maxSkillsInReason {
			shown = shown[:maxSkillsInReason]
			suffix = "..."
		}
		result.Reasons = append(result.Reasons, fmt.Sprintf(
			"Matches %d skill(s): %s%s",
			len(result.MatchedSkills), strings.Join(shown, ", "), suffix,
		))
	}

	result.Score += experiencePoints(profile.ExperienceLevel, job.ExperienceLevel, &result.Reasons)
	return result
}

func experiencePoints(candidateLevel, jobLevel string, reasons *[]string) int {
	cand := strings.ToLower(strings.TrimSpace(candidateLevel))
	if cand == "" {
		return 0
	}
	jobExp := strings.ToLower(strings.TrimSpace(jobLevel))

	candEntry := strings.Contains(cand, "entry") || strings.Contains(cand, "student")
	candJunior := strings.Contains(cand, "junior") || strings.Contains(cand, "1-3")

	switch {
	case jobExp == "entry-level" && candEntry:
		*reasons = append(*reasons, "Perfect for entry-level candidates")
		return experienceExact
	case jobExp == "junior" && candJunior:
		*reasons = append(*reasons, "Suitable for junior level")
		return experienceExact
	case jobExp == "entry-level" || jobExp == "junior":
		*reasons = append(*reasons, "Entry/junior level position")
		return experienceFallback
	case jobExp == "" && (candEntry || candJunior):
		// The job stated no level but the candidate is early-career,
		// so still nudge the score. A job with any other stated level
		// contributes nothing here.
		*reasons = append(*reasons, "Entry/junior level position")
		return experienceFallback
	default:
		return 0
	}
}
