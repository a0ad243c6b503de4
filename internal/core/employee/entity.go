package employee

import (
	"time"

	"github.com/ogurasousui/codex-company-registry/internal/core/merge"
	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

// Status は従業員の在籍状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// 永続化時の列名です。ストアの述語でも同じ名前を利用します。
const (
	FieldID          = "id"
	FieldSiteID      = "site_id"
	FieldCompanyCode = "company_code"
	FieldCode        = "employee_code"
	FieldName        = "employee_name"
)

// Employee は従業員エンティティです。(SiteID, Code) の組はサイト内で一意です。
type Employee struct {
	ID             string
	SiteID         string
	CompanyCode    string
	Code           string
	Name           string
	OccupationName string
	Status         Status
	EmailAddress   string
	PhoneNumber    string
	LastModified   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Accessor はインメモリストアで述語を評価するためのフィールド表です。
var Accessor = store.Accessor[Employee]{
	FieldID:          func(e *Employee) any { return e.ID },
	FieldSiteID:      func(e *Employee) any { return e.SiteID },
	FieldCompanyCode: func(e *Employee) any { return e.CompanyCode },
	FieldCode:        func(e *Employee) any { return e.Code },
	FieldName:        func(e *Employee) any { return e.Name },
}

var fields = merge.Schema[Employee]{
	merge.Of("SiteID", func(e *Employee) *string { return &e.SiteID }),
	merge.Of("CompanyCode", func(e *Employee) *string { return &e.CompanyCode }),
	merge.Of("Code", func(e *Employee) *string { return &e.Code }),
	merge.Of("Name", func(e *Employee) *string { return &e.Name }),
	merge.Of("OccupationName", func(e *Employee) *string { return &e.OccupationName }),
	merge.Of("Status", func(e *Employee) *Status { return &e.Status }),
	merge.Of("EmailAddress", func(e *Employee) *string { return &e.EmailAddress }),
	merge.Of("PhoneNumber", func(e *Employee) *string { return &e.PhoneNumber }),
	merge.Time("LastModified", func(e *Employee) *time.Time { return &e.LastModified }),
}

// Equal は 2 人の従業員の業務フィールドがすべて等しいかを判定します。
func Equal(a, b *Employee) bool {
	return fields.Equal(a, b)
}

// MergeInto は incoming の指定済みフィールドを existing に反映し、変更したフィールド名を返します。
func MergeInto(existing, incoming *Employee) []string {
	return fields.MergeInto(existing, incoming)
}

// UniqueKey は一意制約の対象となるキーを返します。
func UniqueKey(e *Employee) string {
	return e.SiteID + "\x00" + e.Code
}
