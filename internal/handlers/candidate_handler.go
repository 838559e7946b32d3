package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luvo_backend/internal/services"
	"luvo_backend/internal/services/dto"
)

type CandidateHandler struct {
	*BaseHandler
	profileService     services.ProfileService
	jobService         services.JobService
	applicationService services.ApplicationService
	savedJobService    services.SavedJobService
	coinService        services.CoinService
	dashboardService   services.DashboardService
}

func NewCandidateHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	jobService services.JobService,
	applicationService services.ApplicationService,
	savedJobService services.SavedJobService,
	coinService services.CoinService,
	dashboardService services.DashboardService,
) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:        base,
		profileService:     profileService,
		jobService:         jobService,
		applicationService: applicationService,
		savedJobService:    savedJobService,
		coinService:        coinService,
		dashboardService:   dashboardService,
	}
}

func (h *CandidateHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/profile", h.SaveProfile)
	r.GET("/profile", h.GetProfile)

	r.GET("/jobs", h.ListJobs)
	r.GET("/jobs/search", h.SearchJobs)
	r.GET("/jobs/matched", h.MatchedJobs)
	r.GET("/jobs/:jobId", h.GetJob)

	r.POST("/applications/:jobId", h.Apply)
	r.GET("/applications", h.ListApplications)
	r.GET("/applications/:jobId/check", h.CheckApplied)

	r.POST("/saved-jobs/:jobId", h.SaveJob)
	r.DELETE("/saved-jobs/:jobId", h.UnsaveJob)
	r.GET("/saved-jobs", h.ListSavedJobs)
	r.GET("/saved-jobs/:jobId/check", h.CheckSaved)

	r.GET("/coins", h.GetCoins)
	r.GET("/coins/check/:amount", h.CheckCoins)

	r.GET("/dashboard/stats", h.DashboardStats)
}

func (h *CandidateHandler) SaveProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.SaveProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Profile saved", resp)
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Profile fetched", resp)
}

func (h *CandidateHandler) ListJobs(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	resp, err := h.jobService.ListJobs(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Jobs fetched", resp)
}

func (h *CandidateHandler) SearchJobs(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.jobService.SearchJobs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Jobs fetched", resp)
}

func (h *CandidateHandler) MatchedJobs(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.MatchedJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Matched jobs fetched", resp)
}

func (h *CandidateHandler) GetJob(c *gin.Context) {
	resp, err := h.jobService.GetJobByID(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job fetched", resp)
}

func (h *CandidateHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.Apply(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Application submitted", resp)
}

func (h *CandidateHandler) ListApplications(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByCandidate(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Applications fetched", resp)
}

func (h *CandidateHandler) CheckApplied(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.HasApplied(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Application check done", resp)
}

func (h *CandidateHandler) SaveJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobService.SaveJob(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job saved", resp)
}

func (h *CandidateHandler) UnsaveJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.UnsaveJob(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Job removed from saved", nil)
}

func (h *CandidateHandler) ListSavedJobs(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobService.ListSavedJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Saved jobs fetched", resp)
}

func (h *CandidateHandler) CheckSaved(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobService.IsSaved(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Saved job check done", resp)
}

func (h *CandidateHandler) GetCoins(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.coinService.GetBalance(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Coin balance fetched", resp)
}

func (h *CandidateHandler) CheckCoins(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	amount, err := strconv.Atoi(c.Param("amount"))
	if err != nil || amount < 0 {
		Fail(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	resp, err := h.coinService.HasEnough(userID, amount)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Coin check done", resp)
}

func (h *CandidateHandler) DashboardStats(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.CandidateStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Dashboard stats fetched", resp)
}
