package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// dateLayout is how calendar dates cross the DATE column boundary. Dates are
// computed in the configured zone before they get here.
const dateLayout = "2006-01-02"

const attendanceColumns = `
	id, user_id, username, date, time_in, time_out,
	lat_in, lon_in, lat_out, lon_out, created_at, updated_at
`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Username, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.LatIn, &att.LonIn, &att.LatOut, &att.LonOut, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		att.ID = id.String()
	}

	// The partial unique index turns a second open record into a no-op
	// instead of an error, so the surrounding transaction stays usable.
	query := `
		INSERT INTO attendances (id, user_id, username, date, time_in, lat_in, lon_in)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7)
		ON CONFLICT (user_id, date) WHERE time_out IS NULL DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.UserID, att.Username, att.Date.Format(dateLayout), att.TimeIn, att.LatIn, att.LonIn,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetOpen implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetOpen(ctx context.Context, userID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date = $2::date AND time_out IS NULL
		FOR UPDATE
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date.Format(dateLayout)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenArrival
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return att, nil
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Close(ctx context.Context, id string, timeOut time.Time, lat, lon float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET time_out = $1, lat_out = $2, lon_out = $3, updated_at = NOW()
		WHERE id = $4 AND time_out IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, timeOut, lat, lon, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenArrival
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance %s: %w", id, err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("date = $%d::date", argIndex))
		args = append(args, *filter.Date)
		argIndex++
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendances`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY date DESC, time_in DESC LIMIT $%d", argIndex)
	args = append(args, limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
