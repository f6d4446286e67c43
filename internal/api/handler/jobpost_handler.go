package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// JobPostHandler handles HTTP requests for job post operations.
type JobPostHandler struct {
	jobs ports.JobPostStore
}

func NewJobPostHandler(jobs ports.JobPostStore) *JobPostHandler {
	return &JobPostHandler{jobs: jobs}
}

// List returns all job posts, newest first.
//
// @Summary      List job posts
// @Tags         jobs
// @Produce      json
// @Param        user_id  query     string  false  "Only posts created by this user"
// @Success      200      {array}   jobPostResponse
// @Failure      502      {object}  map[string]string
// @Router       /v1/jobs [get]
func (h *JobPostHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if userID := c.QueryParam("user_id"); userID != "" {
		posts := h.jobs.FetchByUser(ctx, userID)
		if err := h.jobs.Err(); err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		return c.JSON(http.StatusOK, toJobPostResponses(posts))
	}

	h.jobs.FetchAll(ctx)
	items := h.jobs.Items()
	// A failed refresh falls back to the cached board when one exists.
	if err := h.jobs.Err(); err != nil && len(items) == 0 {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, toJobPostResponses(items))
}

// Get returns one job post by id.
//
// @Summary      Get a job post
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job post id"
// @Success      200  {object}  jobPostResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/jobs/{id} [get]
func (h *JobPostHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post := h.jobs.FetchByID(c.Request().Context(), id)
	if post == nil {
		if storeErr := h.jobs.Err(); storeErr != nil {
			return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "job post not found")
	}
	return c.JSON(http.StatusOK, toJobPostResponse(*post))
}

// Create publishes a new job post owned by the caller.
//
// @Summary      Create a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobPostRequest  true  "Job post details"
// @Success      201   {object}  jobPostResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/jobs [post]
func (h *JobPostHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createJobPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := h.jobs.Create(c.Request().Context(), ports.CreateJobPostInput{
		JobName:        req.JobName,
		JobDescription: req.JobDescription,
		UserID:         userID,
		MonthlyRate:    req.MonthlyRate,
		JobLink:        req.JobLink,
		JobType:        req.JobType,
		ImageURL:       req.ImageURL,
	})
	if post == nil {
		return echo.NewHTTPError(http.StatusBadGateway, errMessage(h.jobs.Err(), "failed to create job post"))
	}
	return c.JSON(http.StatusCreated, toJobPostResponse(*post))
}

// Update replaces the editable fields of a post the caller owns.
//
// @Summary      Update a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Job post id"
// @Param        body  body      updateJobPostRequest  true  "Job post details"
// @Success      200   {object}  jobPostResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/jobs/{id} [put]
func (h *JobPostHandler) Update(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.requireOwner(c, id, userID); err != nil {
		return err
	}

	post := h.jobs.Update(c.Request().Context(), id, ports.UpdateJobPostInput{
		JobName:        req.JobName,
		JobDescription: req.JobDescription,
		MonthlyRate:    req.MonthlyRate,
		JobLink:        req.JobLink,
		JobType:        req.JobType,
		ImageURL:       req.ImageURL,
	})
	if post == nil {
		return echo.NewHTTPError(http.StatusBadGateway, errMessage(h.jobs.Err(), "failed to update job post"))
	}
	return c.JSON(http.StatusOK, toJobPostResponse(*post))
}

// Delete removes a post the caller owns.
//
// @Summary      Delete a job post
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  int  true  "Job post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/jobs/{id} [delete]
func (h *JobPostHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.requireOwner(c, id, userID); err != nil {
		return err
	}

	if !h.jobs.Delete(c.Request().Context(), id) {
		return echo.NewHTTPError(http.StatusBadGateway, errMessage(h.jobs.Err(), "failed to delete job post"))
	}
	return c.NoContent(http.StatusNoContent)
}

// requireOwner resolves the post and rejects callers who did not create it.
func (h *JobPostHandler) requireOwner(c echo.Context, id int64, userID string) error {
	post := h.jobs.FetchByID(c.Request().Context(), id)
	if post == nil {
		if storeErr := h.jobs.Err(); storeErr != nil {
			return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "job post not found")
	}
	if post.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not the poster of this job")
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
