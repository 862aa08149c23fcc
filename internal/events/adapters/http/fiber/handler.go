package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	eventdomain "session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/events/core/usecase"
	statsdomain "session-stats-service/internal/stats/core/domain"
	statsusecase "session-stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordSessionUseCase interface {
	StartSession(ctx context.Context, in usecase.StartSessionInput) (*eventdomain.Event, error)
	EndSession(ctx context.Context, in usecase.EndSessionInput) (*usecase.EndSessionResult, error)
}

type GetWindowStatsUseCase interface {
	Execute(ctx context.Context, in statsusecase.GetWindowStatsInput) (statsdomain.WindowStats, error)
}

type SessionHandler struct {
	recordUC RecordSessionUseCase
	statsUC  GetWindowStatsUseCase
}

func NewSessionHandler(recordUC RecordSessionUseCase, statsUC GetWindowStatsUseCase) *SessionHandler {
	return &SessionHandler{recordUC: recordUC, statsUC: statsUC}
}

// StartSession godoc
// @Summary Start a work session
// @Description Appends a start event for the user
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Session start payload"
// @Success 201 {object} StartSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/start [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	event, err := h.recordUC.StartSession(c.UserContext(), usecase.StartSessionInput{
		UserID:   req.UserID,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_user",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(StartSessionResponse{
		EventID:   event.ID,
		UserID:    event.UserID,
		Username:  event.Username,
		StartedAt: event.Timestamp.Format(time.RFC3339),
	})
}

// EndSession godoc
// @Summary End the open work session
// @Description Closes the user's open session and returns windowed statistics
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body EndSessionRequest true "Session end payload"
// @Success 200 {object} EndSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No open session"
// @Failure 500 {object} ErrorResponse
// @Router /sessions/end [post]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	var req EndSessionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	result, err := h.recordUC.EndSession(c.UserContext(), usecase.EndSessionInput{
		UserID:   req.UserID,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_user",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrNoOpenSession):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Error:   "no_open_session",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	// All three windows are anchored at the instant the session closed.
	today, err := h.windowSummary(c, req.UserID, statsdomain.WindowDay, result.End)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	month, err := h.windowSummary(c, req.UserID, statsdomain.WindowMonth, result.End)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	year, err := h.windowSummary(c, req.UserID, statsdomain.WindowYear, result.End)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(EndSessionResponse{
		UserID:        req.UserID,
		Username:      req.Username,
		StartedAt:     result.Start.Format(time.RFC3339),
		EndedAt:       result.End.Format(time.RFC3339),
		Duration:      eventdomain.FormatClock(result.Duration),
		TodaySessions: today.TotalSessions,
		Month:         month,
		Year:          year,
	})
}

func (h *SessionHandler) windowSummary(c *fiber.Ctx, userID int64, window statsdomain.Window, now time.Time) (WindowSummary, error) {
	stats, err := h.statsUC.Execute(c.UserContext(), statsusecase.GetWindowStatsInput{
		UserID: userID,
		Window: window,
		Now:    now,
	})
	if err != nil {
		return WindowSummary{}, err
	}

	return WindowSummary{
		TotalSessions:   stats.TotalSessions,
		AverageDuration: stats.AverageLabel(),
		MaxDuration:     stats.MaxLabel(),
		TotalDuration:   stats.TotalLabel(),
	}, nil
}
