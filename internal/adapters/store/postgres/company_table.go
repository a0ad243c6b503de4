package postgres

import (
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	pgdb "github.com/ogurasousui/codex-company-registry/internal/platform/db/postgres"
)

// CompanyTable は companies テーブルの定義です。
var CompanyTable = Table[company.Company]{
	Name:    "companies",
	Key:     company.FieldID,
	OrderBy: "created_at, id",
	Columns: []Column[company.Company]{
		{Name: company.FieldID, Value: func(c *company.Company) any { return c.ID }, Immutable: true},
		{Name: company.FieldSiteID, Value: func(c *company.Company) any { return c.SiteID }},
		{Name: company.FieldCode, Value: func(c *company.Company) any { return c.Code }},
		{Name: company.FieldName, Value: func(c *company.Company) any { return c.Name }},
		{Name: "address_line1", Value: func(c *company.Company) any { return c.AddressLine1 }},
		{Name: "address_line2", Value: func(c *company.Company) any { return c.AddressLine2 }},
		{Name: "address_line3", Value: func(c *company.Company) any { return c.AddressLine3 }},
		{Name: "postal_zip_code", Value: func(c *company.Company) any { return c.PostalZipCode }},
		{Name: "country", Value: func(c *company.Company) any { return c.Country }},
		{Name: "phone_number", Value: func(c *company.Company) any { return c.PhoneNumber }},
		{Name: "fax_number", Value: func(c *company.Company) any { return c.FaxNumber }},
		{Name: "equipment_company_code", Value: func(c *company.Company) any { return c.EquipmentCompanyCode }},
		{Name: "status", Value: func(c *company.Company) any { return string(c.Status) }},
		{Name: "last_modified", Value: func(c *company.Company) any { return nullableTime(c.LastModified) }},
		{Name: "created_at", Value: func(c *company.Company) any { return c.CreatedAt }, Immutable: true},
		{Name: "updated_at", Value: func(c *company.Company) any { return c.UpdatedAt }},
	},
	Scan: scanCompany,
}

// NewCompanyStore は companies テーブルを対象とする Store を生成します。
func NewCompanyStore(pool pgdb.Queryer) *Store[company.Company] {
	return NewStore(pool, CompanyTable)
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		c            company.Company
		status       string
		lastModified sql.NullTime
	)

	if err := row.Scan(
		&c.ID,
		&c.SiteID,
		&c.Code,
		&c.Name,
		&c.AddressLine1,
		&c.AddressLine2,
		&c.AddressLine3,
		&c.PostalZipCode,
		&c.Country,
		&c.PhoneNumber,
		&c.FaxNumber,
		&c.EquipmentCompanyCode,
		&status,
		&lastModified,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = company.Status(status)
	if lastModified.Valid {
		c.LastModified = lastModified.Time.UTC()
	}
	return &c, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
