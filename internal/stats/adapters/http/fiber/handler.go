package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"session-stats-service/internal/stats/core/domain"
	"session-stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetWindowStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetWindowStatsInput) (domain.WindowStats, error)
}

type GetDistributionUseCase interface {
	Execute(ctx context.Context, in usecase.GetDistributionInput) (*usecase.DistributionReport, error)
}

type GetActivityUseCase interface {
	Execute(ctx context.Context, in usecase.GetActivityInput) (*usecase.ActivityReport, error)
}

type LookupUserUseCase interface {
	Execute(ctx context.Context, in usecase.LookupUserInput) (int64, error)
}

type StatsHandler struct {
	statsUC        GetWindowStatsUseCase
	distributionUC GetDistributionUseCase
	activityUC     GetActivityUseCase
	lookupUC       LookupUserUseCase
}

func NewStatsHandler(
	statsUC GetWindowStatsUseCase,
	distributionUC GetDistributionUseCase,
	activityUC GetActivityUseCase,
	lookupUC LookupUserUseCase,
) *StatsHandler {
	return &StatsHandler{
		statsUC:        statsUC,
		distributionUC: distributionUC,
		activityUC:     activityUC,
		lookupUC:       lookupUC,
	}
}

// GetStats godoc
// @Summary Windowed session statistics
// @Description Count, average, max, and total duration over a calendar window
// @Tags Stats
// @Produce json
// @Param user_id query int true "User ID"
// @Param window query string false "Window: day | month | year | all (default all)"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	window := domain.Window(c.Query("window", string(domain.WindowAll)))

	stats, err := h.statsUC.Execute(c.UserContext(), usecase.GetWindowStatsInput{
		UserID: userID,
		Window: window,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser),
			errors.Is(err, usecase.ErrInvalidWindow):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		UserID:          userID,
		Window:          string(window),
		TotalSessions:   stats.TotalSessions,
		AverageDuration: stats.AverageLabel(),
		MaxDuration:     stats.MaxLabel(),
		TotalDuration:   stats.TotalLabel(),
	})
}

// GetDistribution godoc
// @Summary Session duration distribution fit
// @Description Raw duration sample in minutes plus Normal and Log-Normal fits
// @Tags Stats
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} DistributionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/distribution [get]
func (h *StatsHandler) GetDistribution(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	report, err := h.distributionUC.Execute(c.UserContext(), usecase.GetDistributionInput{
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := DistributionResponse{
		UserID:     userID,
		SampleSize: len(report.Sample),
		Sample:     report.Sample,
		Defined:    report.Fit.Defined,
	}
	if report.Fit.Defined {
		resp.Normal = &NormalFitResponse{
			Mean: report.Fit.Normal.Mean,
			Std:  report.Fit.Normal.Std,
		}
		resp.LogNormal = &LogNormalFitResponse{
			Shape:    report.Fit.LogNormal.Shape,
			Location: report.Fit.LogNormal.Location,
			Scale:    report.Fit.LogNormal.Scale,
			Mean:     report.Fit.LogNormal.Mean,
			Std:      report.Fit.LogNormal.Std,
			Mode:     report.Fit.LogNormal.Mode,
		}
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetActivity godoc
// @Summary Recent activity aggregates
// @Description Per-day total minutes and session spans over the last N days
// @Tags Stats
// @Produce json
// @Param user_id query int true "User ID"
// @Param days query int false "Window length in days (default 30)"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/activity [get]
func (h *StatsHandler) GetActivity(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	days := 0
	if daysStr := c.Query("days", ""); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'days' parameter",
			})
		}
	}

	report, err := h.activityUC.Execute(c.UserContext(), usecase.GetActivityInput{
		UserID: userID,
		Days:   days,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUser),
			errors.Is(err, usecase.ErrInvalidDays):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if days == 0 {
		days = 30
	}

	resp := ActivityResponse{
		UserID:      userID,
		Days:        days,
		From:        report.From.Format(time.RFC3339),
		To:          report.To.Format(time.RFC3339),
		DailyTotals: make([]DailyTotalResponse, 0, len(report.DailyTotals)),
		Timelines:   make([]DayTimelineResponse, 0, len(report.Timelines)),
	}
	for _, d := range report.DailyTotals {
		resp.DailyTotals = append(resp.DailyTotals, DailyTotalResponse{
			Date:         d.Date.Format("2006-01-02"),
			TotalMinutes: d.Minutes,
		})
	}
	for _, tl := range report.Timelines {
		day := DayTimelineResponse{
			Date:     tl.Date.Format("2006-01-02"),
			Sessions: make([]SessionSpanResponse, 0, len(tl.Spans)),
		}
		for _, span := range tl.Spans {
			day.Sessions = append(day.Sessions, SessionSpanResponse{
				Start: span.Start.Format("15:04:05"),
				End:   span.End.Format("15:04:05"),
			})
		}
		resp.Timelines = append(resp.Timelines, day)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// LookupUser godoc
// @Summary Resolve a display name to a user id
// @Description Case-insensitive scan of logged usernames; latest match wins
// @Tags Users
// @Produce json
// @Param username query string true "Display name"
// @Success 200 {object} LookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/lookup [get]
func (h *StatsHandler) LookupUser(c *fiber.Ctx) error {
	username := c.Query("username", "")
	if username == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "username is required",
		})
	}

	userID, err := h.lookupUC.Execute(c.UserContext(), usecase.LookupUserInput{
		Username: username,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUsername):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrUserNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "user_not_found",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(LookupResponse{
		Username: username,
		UserID:   userID,
	})
}

func queryUserID(c *fiber.Ctx) (int64, error) {
	userIDStr := c.Query("user_id", "")
	if userIDStr == "" {
		return 0, errors.New("user_id is required")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, errors.New("invalid 'user_id' parameter")
	}
	return userID, nil
}
