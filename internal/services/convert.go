package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"luvo_backend/internal/models"
	"luvo_backend/internal/services/dto"
)

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func jsonToStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func jobToResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:              job.ID,
		RecruiterID:     job.RecruiterID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Type:            job.Type,
		ExperienceLevel: job.ExperienceLevel,
		Description:     job.Description,
		Requirements:    jsonToStrings(job.Requirements),
		RequiredSkills:  jsonToStrings(job.RequiredSkills),
		Salary:          job.Salary,
		CareerTrack:     job.CareerTrack,
		PostedDate:      job.PostedDate,
		Deadline:        job.Deadline,
		Status:          string(job.Status),
		CoinCost:        job.CoinCost,
		Views:           job.Views,
	}
}

func applicationToResponse(app *models.JobApplication, includeJob bool) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:            app.ID,
		JobID:         app.JobID,
		CandidateID:   app.CandidateID,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt,
		CoinsDeducted: app.CoinsDeducted,
	}
	if includeJob && app.Job.ID != "" {
		job := jobToResponse(&app.Job)
		resp.Job = &job
	}
	return resp
}
