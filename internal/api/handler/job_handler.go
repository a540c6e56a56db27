package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
	"github.com/younivent/platform/internal/core/service"
)

// JobHandler accepts simulated long-running operations and reports busy state.
type JobHandler struct {
	dispatcher  ports.JobDispatcher
	tracker     ports.ActionTracker
	jobDuration time.Duration
}

func NewJobHandler(dispatcher ports.JobDispatcher, tracker ports.ActionTracker, jobDuration time.Duration) *JobHandler {
	return &JobHandler{dispatcher: dispatcher, tracker: tracker, jobDuration: jobDuration}
}

type jobRequest struct {
	Job string `json:"job" validate:"required"`
}

type jobAcceptedResponse struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type busyResponse struct {
	Busy []string `json:"busy"`
}

// Run enqueues a named job keyed per user, returning 202. The key doubles as
// the action-tracker key, so re-triggering the same job while it runs is
// rejected by the single-flight guard.
//
// @Summary      Trigger a simulated job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job name"
// @Success      202   {object}  jobAcceptedResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Run(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if !service.KnownJob(req.Job) {
		return domain.ErrUnknownJob
	}

	key := req.Job + ":" + identity.ID
	if h.tracker.IsBusy(key) {
		return domain.ErrActionInFlight
	}

	h.dispatcher.Enqueue(ports.JobInput{
		Key:      key,
		Name:     req.Job,
		UserID:   identity.ID,
		Duration: h.jobDuration,
	})
	return c.JSON(http.StatusAccepted, jobAcceptedResponse{Key: key, Message: "job accepted"})
}

// Busy lists the caller-visible in-flight job keys.
//
// @Summary      List in-flight jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  busyResponse
// @Router       /v1/jobs/busy [get]
func (h *JobHandler) Busy(c echo.Context) error {
	return c.JSON(http.StatusOK, busyResponse{Busy: h.tracker.BusyKeys()})
}
