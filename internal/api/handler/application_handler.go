package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	applications ports.ApplicationStore
	jobs         ports.JobPostStore
}

func NewApplicationHandler(applications ports.ApplicationStore, jobs ports.JobPostStore) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, jobs: jobs}
}

// ListMine returns the caller's applications, newest first.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   applicationResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/applications [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	apps := h.applications.FetchByUser(c.Request().Context(), userID)
	if storeErr := h.applications.Err(); storeErr != nil {
		return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
	}
	return c.JSON(http.StatusOK, toApplicationResponses(apps))
}

// ListByJob returns the applications for a job the caller posted.
//
// @Summary      List applications for a job post
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job post id"
// @Success      200  {array}   applicationResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/jobs/{id}/applications [get]
func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	// Applicant details are only visible to the poster.
	post := h.jobs.FetchByID(c.Request().Context(), jobID)
	if post == nil {
		if storeErr := h.jobs.Err(); storeErr != nil {
			return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "job post not found")
	}
	if post.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not the poster of this job")
	}

	apps := h.applications.FetchByJob(c.Request().Context(), jobID)
	if storeErr := h.applications.Err(); storeErr != nil {
		return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
	}
	return c.JSON(http.StatusOK, toApplicationResponses(apps))
}

// Submit files the caller's application for a job. Resubmitting for the
// same job overwrites the earlier application instead of duplicating it.
//
// @Summary      Submit or update a job application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application form"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if post := h.jobs.FetchByID(c.Request().Context(), req.JobID); post == nil {
		if storeErr := h.jobs.Err(); storeErr != nil {
			return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "job post not found")
	}

	app := h.applications.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		JobID:       req.JobID,
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Education:   req.Education,
		Position:    req.Position,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		References:  req.References,
	})
	if app == nil {
		return echo.NewHTTPError(http.StatusBadGateway, errMessage(h.applications.Err(), "failed to submit application"))
	}
	return c.JSON(http.StatusCreated, toApplicationResponse(*app))
}
