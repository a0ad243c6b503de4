package postgres

import (
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-company-registry/internal/platform/db/postgres"
)

// EmployeeTable は employees テーブルの定義です。
var EmployeeTable = Table[employee.Employee]{
	Name:    "employees",
	Key:     employee.FieldID,
	OrderBy: "created_at, id",
	Columns: []Column[employee.Employee]{
		{Name: employee.FieldID, Value: func(e *employee.Employee) any { return e.ID }, Immutable: true},
		{Name: employee.FieldSiteID, Value: func(e *employee.Employee) any { return e.SiteID }},
		{Name: employee.FieldCompanyCode, Value: func(e *employee.Employee) any { return e.CompanyCode }},
		{Name: employee.FieldCode, Value: func(e *employee.Employee) any { return e.Code }},
		{Name: employee.FieldName, Value: func(e *employee.Employee) any { return e.Name }},
		{Name: "occupation_name", Value: func(e *employee.Employee) any { return e.OccupationName }},
		{Name: "status", Value: func(e *employee.Employee) any { return string(e.Status) }},
		{Name: "email_address", Value: func(e *employee.Employee) any { return e.EmailAddress }},
		{Name: "phone_number", Value: func(e *employee.Employee) any { return e.PhoneNumber }},
		{Name: "last_modified", Value: func(e *employee.Employee) any { return nullableTime(e.LastModified) }},
		{Name: "created_at", Value: func(e *employee.Employee) any { return e.CreatedAt }, Immutable: true},
		{Name: "updated_at", Value: func(e *employee.Employee) any { return e.UpdatedAt }},
	},
	Scan: scanEmployee,
}

// NewEmployeeStore は employees テーブルを対象とする Store を生成します。
func NewEmployeeStore(pool pgdb.Queryer) *Store[employee.Employee] {
	return NewStore(pool, EmployeeTable)
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		e            employee.Employee
		status       string
		lastModified sql.NullTime
	)

	if err := row.Scan(
		&e.ID,
		&e.SiteID,
		&e.CompanyCode,
		&e.Code,
		&e.Name,
		&e.OccupationName,
		&status,
		&e.EmailAddress,
		&e.PhoneNumber,
		&lastModified,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = employee.Status(status)
	if lastModified.Valid {
		e.LastModified = lastModified.Time.UTC()
	}
	return &e, nil
}
