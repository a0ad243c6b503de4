package company

import (
	"time"

	"github.com/ogurasousui/codex-company-registry/internal/core/merge"
	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

// Status は会社の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// 永続化時の列名です。ストアの述語でも同じ名前を利用します。
const (
	FieldID     = "id"
	FieldSiteID = "site_id"
	FieldCode   = "company_code"
	FieldName   = "company_name"
)

// Company は会社エンティティです。(SiteID, Code) の組はサイト内で一意です。
type Company struct {
	ID                   string
	SiteID               string
	Code                 string
	Name                 string
	AddressLine1         string
	AddressLine2         string
	AddressLine3         string
	PostalZipCode        string
	Country              string
	PhoneNumber          string
	FaxNumber            string
	EquipmentCompanyCode string
	Status               Status
	LastModified         time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Accessor はインメモリストアで述語を評価するためのフィールド表です。
var Accessor = store.Accessor[Company]{
	FieldID:     func(c *Company) any { return c.ID },
	FieldSiteID: func(c *Company) any { return c.SiteID },
	FieldCode:   func(c *Company) any { return c.Code },
	FieldName:   func(c *Company) any { return c.Name },
}

// fields は比較・部分更新の対象となる業務フィールドです。ID と作成・更新日時は含みません。
var fields = merge.Schema[Company]{
	merge.Of("SiteID", func(c *Company) *string { return &c.SiteID }),
	merge.Of("Code", func(c *Company) *string { return &c.Code }),
	merge.Of("Name", func(c *Company) *string { return &c.Name }),
	merge.Of("AddressLine1", func(c *Company) *string { return &c.AddressLine1 }),
	merge.Of("AddressLine2", func(c *Company) *string { return &c.AddressLine2 }),
	merge.Of("AddressLine3", func(c *Company) *string { return &c.AddressLine3 }),
	merge.Of("PostalZipCode", func(c *Company) *string { return &c.PostalZipCode }),
	merge.Of("Country", func(c *Company) *string { return &c.Country }),
	merge.Of("PhoneNumber", func(c *Company) *string { return &c.PhoneNumber }),
	merge.Of("FaxNumber", func(c *Company) *string { return &c.FaxNumber }),
	merge.Of("EquipmentCompanyCode", func(c *Company) *string { return &c.EquipmentCompanyCode }),
	merge.Of("Status", func(c *Company) *Status { return &c.Status }),
	merge.Time("LastModified", func(c *Company) *time.Time { return &c.LastModified }),
}

// Equal は 2 つの会社の業務フィールドがすべて等しいかを判定します。
func Equal(a, b *Company) bool {
	return fields.Equal(a, b)
}

// MergeInto は incoming の指定済みフィールドを existing に反映し、変更したフィールド名を返します。
func MergeInto(existing, incoming *Company) []string {
	return fields.MergeInto(existing, incoming)
}

// UniqueKey は一意制約の対象となるキーを返します。
func UniqueKey(c *Company) string {
	return c.SiteID + "\x00" + c.Code
}
