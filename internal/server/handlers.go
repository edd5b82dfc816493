package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/core/services"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, envelope{Status: code, Message: message, Data: data})
}

// respondError maps engine failures onto HTTP codes: bad ranges and malformed
// configurations are client errors, missing records are 404, everything else
// is a 500.
func (s *Server) respondError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, schedule.ErrOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, schedule.ErrInvalidConfiguration):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound):
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
	}
	return respond(c, code, err.Error(), nil)
}

// parseRange reads the required from/to query parameters.
func parseRange(c echo.Context) (schedule.DateRange, error) {
	fromStr := c.QueryParam("from")
	toStr := c.QueryParam("to")
	if fromStr == "" || toStr == "" {
		return schedule.DateRange{}, fmt.Errorf("from and to query parameters are required")
	}

	from, err := schedule.ParseDateKey(fromStr)
	if err != nil {
		return schedule.DateRange{}, err
	}
	to, err := schedule.ParseDateKey(toStr)
	if err != nil {
		return schedule.DateRange{}, err
	}
	return schedule.DateRange{Start: from, End: to}, nil
}

type dayStatusDTO struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

func (s *Server) teamStatusHandler(c echo.Context) error {
	r, err := parseRange(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	entries, err := services.TeamCalendar(c.Request().Context(), s.rotations, s.logger, c.Param("id"), r)
	if err != nil {
		return s.respondError(c, err)
	}

	days := make([]dayStatusDTO, len(entries))
	for i, entry := range entries {
		days[i] = dayStatusDTO{Date: entry.Date.String(), Status: entry.Status.String()}
	}
	return respond(c, http.StatusOK, "ok", days)
}

type staffedShiftDTO struct {
	SegmentID   string         `json:"segment_id"`
	SegmentName string         `json:"segment_name"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	Required    int            `json:"required_headcount"`
	ByRole      map[string]int `json:"by_role"`
	StaleRoles  []string       `json:"stale_roles,omitempty"`
}

type staleRoleWarningDTO struct {
	SegmentID   string `json:"segment_id"`
	SegmentName string `json:"segment_name"`
	RoleID      string `json:"role_id"`
}

type scheduleDTO struct {
	TaskID   string                `json:"task_id"`
	Shifts   []staffedShiftDTO     `json:"shifts"`
	Warnings []staleRoleWarningDTO `json:"warnings,omitempty"`
}

func (s *Server) taskScheduleHandler(c echo.Context) error {
	r, err := parseRange(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	result, err := services.BuildSchedule(c.Request().Context(), s.segments, s.roles, s.logger, c.Param("id"), r)
	if err != nil {
		return s.respondError(c, err)
	}

	dto := scheduleDTO{TaskID: result.TaskID, Shifts: make([]staffedShiftDTO, len(result.Shifts))}
	for i, shift := range result.Shifts {
		dto.Shifts[i] = staffedShiftDTO{
			SegmentID:   shift.Shift.SegmentID,
			SegmentName: shift.SegmentName,
			Start:       shift.Shift.Start,
			End:         shift.Shift.End,
			Required:    shift.Staffing.Required,
			ByRole:      shift.Staffing.ByRole,
			StaleRoles:  shift.Staffing.StaleRoles,
		}
	}
	for _, w := range result.Warnings {
		dto.Warnings = append(dto.Warnings, staleRoleWarningDTO{
			SegmentID:   w.SegmentID,
			SegmentName: w.SegmentName,
			RoleID:      w.RoleID,
		})
	}
	return respond(c, http.StatusOK, "ok", dto)
}

func (s *Server) taskScheduleCSVHandler(c echo.Context) error {
	r, err := parseRange(c)
	if err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	result, err := services.BuildSchedule(c.Request().Context(), s.segments, s.roles, s.logger, c.Param("id"), r)
	if err != nil {
		return s.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_schedule.csv", result.TaskID))
	c.Response().WriteHeader(http.StatusOK)
	return services.ExportSchedule(c.Response(), result)
}

type restShiftDTO struct {
	SegmentID    string    `json:"segment_id" validate:"required"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	MinRestHours int       `json:"min_rest_hours" validate:"min=0"`
}

type restCheckRequest struct {
	PersonID string         `json:"person_id" validate:"required"`
	Shifts   []restShiftDTO `json:"shifts" validate:"required,min=1,dive"`
}

type restViolationDTO struct {
	FirstSegmentID    string    `json:"first_segment_id"`
	FirstEnd          time.Time `json:"first_end"`
	SecondSegmentID   string    `json:"second_segment_id"`
	SecondStart       time.Time `json:"second_start"`
	RequiredRestHours float64   `json:"required_rest_hours"`
	ActualRestHours   float64   `json:"actual_rest_hours"`
	ShortfallHours    float64   `json:"shortfall_hours"`
}

func (s *Server) restCheckHandler(c echo.Context) error {
	var req restCheckRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}
	if err := s.validate.Struct(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}

	assignments := make([]schedule.ShiftInstance, len(req.Shifts))
	for i, shift := range req.Shifts {
		assignments[i] = schedule.ShiftInstance{
			SegmentID:    shift.SegmentID,
			Start:        shift.Start,
			End:          shift.End,
			MinRestAfter: time.Duration(shift.MinRestHours) * time.Hour,
		}
	}

	violations := services.ReviewAssignments(s.logger, req.PersonID, assignments)

	dto := make([]restViolationDTO, len(violations))
	for i, v := range violations {
		dto[i] = restViolationDTO{
			FirstSegmentID:    v.First.SegmentID,
			FirstEnd:          v.First.End,
			SecondSegmentID:   v.Second.SegmentID,
			SecondStart:       v.Second.Start,
			RequiredRestHours: v.RequiredRest.Hours(),
			ActualRestHours:   v.ActualRest.Hours(),
			ShortfallHours:    v.Shortfall.Hours(),
		}
	}
	return respond(c, http.StatusOK, "ok", dto)
}

type roleDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) listRolesHandler(c echo.Context) error {
	records, err := s.roles.GetRoles(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}

	roles := make([]roleDTO, len(records))
	for i, rec := range records {
		roles[i] = roleDTO{ID: rec.ID, Name: rec.Name}
	}
	return respond(c, http.StatusOK, "ok", roles)
}
