package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ExportSchedule writes a built schedule as CSV for the surrounding
// application's table rendering and downloads. One row per shift instance;
// stale roles appear in their own column so spreadsheets surface them.
func ExportSchedule(w io.Writer, result *ScheduleResult) error {
	cw := csv.NewWriter(w)

	header := []string{"segment_id", "segment_name", "start", "end", "required_headcount", "roles", "stale_roles"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, shift := range result.Shifts {
		row := []string{
			shift.Shift.SegmentID,
			shift.SegmentName,
			shift.Shift.Start.Format(time.RFC3339),
			shift.Shift.End.Format(time.RFC3339),
			strconv.Itoa(shift.Staffing.Required),
			formatRoles(shift),
			strings.Join(shift.Staffing.StaleRoles, ";"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// formatRoles renders a composition as "role:count" pairs in authored order.
func formatRoles(shift StaffedShift) string {
	parts := make([]string, 0, len(shift.Shift.Roles))
	for _, rc := range shift.Shift.Roles {
		parts = append(parts, fmt.Sprintf("%s:%d", rc.RoleID, rc.Count))
	}
	return strings.Join(parts, ";")
}
