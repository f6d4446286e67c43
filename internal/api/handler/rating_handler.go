package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// RatingHandler handles HTTP requests for job ratings.
type RatingHandler struct {
	ratings ports.RatingStore
}

func NewRatingHandler(ratings ports.RatingStore) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// ListByJob returns the ratings of one job post, newest first.
//
// @Summary      List ratings for a job post
// @Tags         ratings
// @Produce      json
// @Param        id   path      int  true  "Job post id"
// @Success      200  {array}   ratingResponse
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/jobs/{id}/ratings [get]
func (h *RatingHandler) ListByJob(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ratings := h.ratings.FetchByJob(c.Request().Context(), jobID)
	if storeErr := h.ratings.Err(); storeErr != nil {
		return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
	}
	return c.JSON(http.StatusOK, toRatingResponses(ratings))
}

// Submit records the caller's score for a job. Re-rating the same job
// overwrites the earlier score instead of duplicating it.
//
// @Summary      Submit or update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRatingRequest  true  "Rating"
// @Success      201   {object}  ratingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/ratings [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating := h.ratings.Submit(c.Request().Context(), ports.SubmitRatingInput{
		UserID: userID,
		JobID:  req.JobID,
		Score:  req.Score,
	})
	if rating == nil {
		return echo.NewHTTPError(http.StatusBadGateway, errMessage(h.ratings.Err(), "failed to submit rating"))
	}
	return c.JSON(http.StatusCreated, toRatingResponse(*rating))
}

// Average returns the mean score of a job post, 0 when it has no ratings.
// The cache is refreshed for the job first, so the figure reflects the
// backend as of this request.
//
// @Summary      Get the average rating of a job post
// @Tags         ratings
// @Produce      json
// @Param        jobID  path      int  true  "Job post id"
// @Success      200    {object}  averageRatingResponse
// @Failure      400    {object}  map[string]string
// @Failure      502    {object}  map[string]string
// @Router       /v1/ratings/average/{jobID} [get]
func (h *RatingHandler) Average(c echo.Context) error {
	jobID, err := pathID(c, "jobID")
	if err != nil {
		return err
	}

	rows := h.ratings.FetchByJob(c.Request().Context(), jobID)
	if storeErr := h.ratings.Err(); storeErr != nil {
		return echo.NewHTTPError(http.StatusBadGateway, storeErr.Error())
	}

	var sum float64
	rated := false
	userID, _ := c.Get("user_id").(string)
	for _, r := range rows {
		sum += r.RatedAt
		if userID != "" && r.UserID == userID {
			rated = true
		}
	}
	avg := 0.0
	if len(rows) > 0 {
		avg = sum / float64(len(rows))
	}

	return c.JSON(http.StatusOK, averageRatingResponse{
		JobID:   jobID,
		Average: avg,
		Count:   len(rows),
		Rated:   rated,
	})
}
