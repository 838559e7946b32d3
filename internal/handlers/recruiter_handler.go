package handlers

import (
	"github.com/gin-gonic/gin"

	"luvo_backend/internal/services"
	"luvo_backend/internal/services/dto"
)

type RecruiterHandler struct {
	*BaseHandler
	jobService         services.RecruiterJobService
	applicationService services.ApplicationService
	candidateService   services.CandidateService
	interviewService   services.InterviewService
	dashboardService   services.DashboardService
}

func NewRecruiterHandler(
	base *BaseHandler,
	jobService services.RecruiterJobService,
	applicationService services.ApplicationService,
	candidateService services.CandidateService,
	interviewService services.InterviewService,
	dashboardService services.DashboardService,
) *RecruiterHandler {
	return &RecruiterHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
		candidateService:   candidateService,
		interviewService:   interviewService,
		dashboardService:   dashboardService,
	}
}

func (h *RecruiterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/stats", h.DashboardStats)

	r.POST("/jobs", h.CreateJob)
	r.GET("/jobs", h.ListJobs)
	r.GET("/jobs/status/:status", h.ListJobsByStatus)
	r.GET("/jobs/:jobId", h.GetJob)
	r.PUT("/jobs/:jobId", h.UpdateJob)
	r.PUT("/jobs/:jobId/status", h.UpdateJobStatus)
	r.DELETE("/jobs/:jobId", h.DeleteJob)

	r.GET("/applications", h.ListApplications)
	r.GET("/applications/status/:status", h.ListApplicationsByStatus)
	r.GET("/applications/:id", h.GetApplication)
	r.PUT("/applications/:id/status", h.UpdateApplicationStatus)

	r.GET("/candidates", h.ListCandidates)
	r.GET("/candidates/:id", h.GetCandidate)

	r.POST("/interviews", h.ScheduleInterview)
	r.GET("/interviews", h.ListInterviews)
	r.GET("/interviews/status/:status", h.ListInterviewsByStatus)
	r.GET("/interviews/upcoming", h.ListUpcomingInterviews)
	r.GET("/interviews/:id", h.GetInterview)
	r.PUT("/interviews/:id", h.UpdateInterview)
	r.PUT("/interviews/:id/status", h.UpdateInterviewStatus)
	r.DELETE("/interviews/:id", h.DeleteInterview)
}

func (h *RecruiterHandler) DashboardStats(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.RecruiterStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Dashboard stats fetched", resp)
}

func (h *RecruiterHandler) CreateJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job created", resp)
}

func (h *RecruiterHandler) ListJobs(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.ListJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Jobs fetched", resp)
}

func (h *RecruiterHandler) ListJobsByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.ListJobsByStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Jobs fetched", resp)
}

func (h *RecruiterHandler) GetJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.GetJob(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job fetched", resp)
}

func (h *RecruiterHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.UpdateJob(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job updated", resp)
}

func (h *RecruiterHandler) UpdateJobStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.UpdateJobStatus(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job status updated", resp)
}

func (h *RecruiterHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job deleted", nil)
}

func (h *RecruiterHandler) ListApplications(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByRecruiter(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Applications fetched", resp)
}

func (h *RecruiterHandler) ListApplicationsByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByRecruiterAndStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Applications fetched", resp)
}

func (h *RecruiterHandler) GetApplication(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Application fetched", resp)
}

func (h *RecruiterHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Application status updated", resp)
}

func (h *RecruiterHandler) ListCandidates(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.candidateService.ListApplicants(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Candidates fetched", resp)
}

func (h *RecruiterHandler) GetCandidate(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.candidateService.GetApplicant(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Candidate fetched", resp)
}

func (h *RecruiterHandler) ScheduleInterview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.interviewService.Schedule(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interview scheduled", resp)
}

func (h *RecruiterHandler) ListInterviews(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.interviewService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interviews fetched", resp)
}

func (h *RecruiterHandler) ListInterviewsByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.interviewService.ListByStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interviews fetched", resp)
}

func (h *RecruiterHandler) ListUpcomingInterviews(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.interviewService.ListUpcoming(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Upcoming interviews fetched", resp)
}

func (h *RecruiterHandler) GetInterview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.interviewService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interview fetched", resp)
}

func (h *RecruiterHandler) UpdateInterview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.interviewService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interview updated", resp)
}

func (h *RecruiterHandler) UpdateInterviewStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.interviewService.UpdateStatus(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interview status updated", resp)
}

func (h *RecruiterHandler) DeleteInterview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Interview deleted", nil)
}
