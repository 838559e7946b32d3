package handlers

import (
	"github.com/gin-gonic/gin"

	"luvo_backend/internal/services"
	"luvo_backend/internal/services/dto"
)

type CounselorHandler struct {
	*BaseHandler
	studentService   services.StudentService
	sessionService   services.SessionService
	planService      services.CareerPlanService
	resourceService  services.ResourceService
	dashboardService services.DashboardService
}

func NewCounselorHandler(
	base *BaseHandler,
	studentService services.StudentService,
	sessionService services.SessionService,
	planService services.CareerPlanService,
	resourceService services.ResourceService,
	dashboardService services.DashboardService,
) *CounselorHandler {
	return &CounselorHandler{
		BaseHandler:      base,
		studentService:   studentService,
		sessionService:   sessionService,
		planService:      planService,
		resourceService:  resourceService,
		dashboardService: dashboardService,
	}
}

func (h *CounselorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/stats", h.DashboardStats)

	r.POST("/students", h.CreateStudent)
	r.GET("/students", h.ListStudents)
	r.GET("/students/status/:status", h.ListStudentsByStatus)
	r.GET("/students/:id", h.GetStudent)
	r.PUT("/students/:id", h.UpdateStudent)

	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions", h.ListSessions)
	r.GET("/sessions/status/:status", h.ListSessionsByStatus)
	r.GET("/sessions/:id", h.GetSession)
	r.PUT("/sessions/:id", h.UpdateSession)
	r.PUT("/sessions/:id/status", h.UpdateSessionStatus)
	r.DELETE("/sessions/:id", h.DeleteSession)

	r.POST("/career-plans", h.CreateCareerPlan)
	r.GET("/career-plans", h.ListCareerPlans)
	r.GET("/career-plans/status/:status", h.ListCareerPlansByStatus)
	r.GET("/career-plans/:id", h.GetCareerPlan)
	r.PUT("/career-plans/:id", h.UpdateCareerPlan)
	r.DELETE("/career-plans/:id", h.DeleteCareerPlan)

	r.POST("/resources", h.CreateResource)
	r.GET("/resources", h.ListResources)
	r.GET("/resources/type/:type", h.ListResourcesByType)
	r.GET("/resources/featured", h.ListFeaturedResources)
	r.GET("/resources/:id", h.GetResource)
	r.PUT("/resources/:id", h.UpdateResource)
	r.DELETE("/resources/:id", h.DeleteResource)
}

func (h *CounselorHandler) DashboardStats(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.CounselorStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Dashboard stats fetched", resp)
}

func (h *CounselorHandler) CreateStudent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.studentService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Student added", resp)
}

func (h *CounselorHandler) ListStudents(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.studentService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Students fetched", resp)
}

func (h *CounselorHandler) ListStudentsByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.studentService.ListByStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Students fetched", resp)
}

func (h *CounselorHandler) GetStudent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.studentService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Student fetched", resp)
}

func (h *CounselorHandler) UpdateStudent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.studentService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Student updated", resp)
}

func (h *CounselorHandler) CreateSession(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.sessionService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Session scheduled", resp)
}

func (h *CounselorHandler) ListSessions(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Sessions fetched", resp)
}

func (h *CounselorHandler) ListSessionsByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.ListByStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Sessions fetched", resp)
}

func (h *CounselorHandler) GetSession(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Session fetched", resp)
}

func (h *CounselorHandler) UpdateSession(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.sessionService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Session updated", resp)
}

func (h *CounselorHandler) UpdateSessionStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.sessionService.UpdateStatus(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Session status updated", resp)
}

func (h *CounselorHandler) DeleteSession(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Session deleted", nil)
}

func (h *CounselorHandler) CreateCareerPlan(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCareerPlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.planService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plan created", resp)
}

func (h *CounselorHandler) ListCareerPlans(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.planService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plans fetched", resp)
}

func (h *CounselorHandler) ListCareerPlansByStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.planService.ListByStatus(userID, c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plans fetched", resp)
}

func (h *CounselorHandler) GetCareerPlan(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.planService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plan fetched", resp)
}

func (h *CounselorHandler) UpdateCareerPlan(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCareerPlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.planService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plan updated", resp)
}

func (h *CounselorHandler) DeleteCareerPlan(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.planService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Career plan deleted", nil)
}

func (h *CounselorHandler) CreateResource(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resourceService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resource created", resp)
}

func (h *CounselorHandler) ListResources(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.resourceService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resources fetched", resp)
}

func (h *CounselorHandler) ListResourcesByType(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.resourceService.ListByType(userID, c.Param("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resources fetched", resp)
}

func (h *CounselorHandler) ListFeaturedResources(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.resourceService.ListFeatured(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Featured resources fetched", resp)
}

func (h *CounselorHandler) GetResource(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.resourceService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resource fetched", resp)
}

func (h *CounselorHandler) UpdateResource(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resourceService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resource updated", resp)
}

func (h *CounselorHandler) DeleteResource(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.resourceService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, "Resource deleted", nil)
}
