package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/leave"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	id, employee_id, leave_type, start_date, end_date, reason, status,
	approved_by, approved_at, comments, created_at, updated_at
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.Comments,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository. The overlap check and the
// insert run in one transaction serialized per employee by an advisory lock,
// so two concurrent applications for intersecting ranges cannot both pass the
// check. The gist exclusion constraint on active ranges is the commit-time
// backstop: a violation surfaces as ErrOverlappingRequest.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, l.db)

		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtext($1))`, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to acquire leave lock: %w", err)
		}

		query := `
			SELECT start_date, end_date
			FROM leave_requests
			WHERE employee_id = $1 AND status IN ('pending', 'approved')
		`

		rows, err := q.Query(txCtx, query, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to load active leave requests: %w", err)
		}

		var existing []leave.LeaveRequest
		for rows.Next() {
			var r leave.LeaveRequest
			if err := rows.Scan(&r.StartDate, &r.EndDate); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan leave request: %w", err)
			}
			existing = append(existing, r)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate leave requests: %w", err)
		}

		for _, r := range existing {
			if r.OverlapsRange(req.StartDate, req.EndDate) {
				return leave.ErrOverlappingRequest
			}
		}

		insert := `
			INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`

		err = q.QueryRow(txCtx, insert,
			req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, req.Status,
		).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
				return leave.ErrOverlappingRequest
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, leave.ErrOverlappingRequest) {
			return leave.LeaveRequest{}, leave.ErrOverlappingRequest
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT` + leaveColumns + `FROM leave_requests WHERE id = $1`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// GetActiveByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status IN ('pending', 'approved')
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// UpdateDecision implements leave.LeaveRequestRepository. The WHERE clause
// keeps the transition one-shot under concurrency.
func (l *leaveRequestRepository) UpdateDecision(ctx context.Context, id string, status leave.Status, decidedBy string, decidedAt time.Time, comments *string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, comments = COALESCE($5, comments), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, decidedBy, decidedAt, comments)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); checkErr == nil && !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrAlreadyDecided
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
			   l.reason, l.status, l.approved_by, l.approved_at, l.comments,
			   l.created_at, l.updated_at, e.name, e.email, a.name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		LEFT JOIN employees a ON a.id = l.approved_by
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.Comments,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName, &req.EmployeeEmail, &req.ApproverName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
