package company

import (
	"strings"
	"time"
)

// CompanyInfo はサービス境界でやり取りする会社情報です。
// ID と作成・更新日時は出力専用で、エンティティへの変換時には無視されます。
type CompanyInfo struct {
	ID                   string    `json:"id,omitempty"`
	SiteID               string    `json:"siteId"`
	Code                 string    `json:"companyCode"`
	Name                 string    `json:"companyName"`
	AddressLine1         string    `json:"addressLine1,omitempty"`
	AddressLine2         string    `json:"addressLine2,omitempty"`
	AddressLine3         string    `json:"addressLine3,omitempty"`
	PostalZipCode        string    `json:"postalZipCode,omitempty"`
	Country              string    `json:"country,omitempty"`
	PhoneNumber          string    `json:"phoneNumber,omitempty"`
	FaxNumber            string    `json:"faxNumber,omitempty"`
	EquipmentCompanyCode string    `json:"equipmentCompanyCode,omitempty"`
	Status               Status    `json:"status,omitempty"`
	LastModified         time.Time `json:"lastModified,omitzero"`
	CreatedAt            time.Time `json:"createdAt,omitzero"`
	UpdatedAt            time.Time `json:"updatedAt,omitzero"`
}

// ToInfo はエンティティを CompanyInfo に変換します。
func ToInfo(c *Company) *CompanyInfo {
	if c == nil {
		return nil
	}
	return &CompanyInfo{
		ID:                   c.ID,
		SiteID:               c.SiteID,
		Code:                 c.Code,
		Name:                 c.Name,
		AddressLine1:         c.AddressLine1,
		AddressLine2:         c.AddressLine2,
		AddressLine3:         c.AddressLine3,
		PostalZipCode:        c.PostalZipCode,
		Country:              c.Country,
		PhoneNumber:          c.PhoneNumber,
		FaxNumber:            c.FaxNumber,
		EquipmentCompanyCode: c.EquipmentCompanyCode,
		Status:               c.Status,
		LastModified:         c.LastModified,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

// ToInfos はエンティティの一覧を変換します。
func ToInfos(companies []*Company) []*CompanyInfo {
	infos := make([]*CompanyInfo, 0, len(companies))
	for _, c := range companies {
		if c == nil {
			continue
		}
		infos = append(infos, ToInfo(c))
	}
	return infos
}

// ToEntity は CompanyInfo をエンティティに変換します。文字列は前後の空白を除去します。
func ToEntity(info CompanyInfo) *Company {
	var lastModified time.Time
	if !info.LastModified.IsZero() {
		lastModified = info.LastModified.UTC()
	}
	return &Company{
		SiteID:               strings.TrimSpace(info.SiteID),
		Code:                 strings.TrimSpace(info.Code),
		Name:                 strings.TrimSpace(info.Name),
		AddressLine1:         strings.TrimSpace(info.AddressLine1),
		AddressLine2:         strings.TrimSpace(info.AddressLine2),
		AddressLine3:         strings.TrimSpace(info.AddressLine3),
		PostalZipCode:        strings.TrimSpace(info.PostalZipCode),
		Country:              strings.TrimSpace(info.Country),
		PhoneNumber:          strings.TrimSpace(info.PhoneNumber),
		FaxNumber:            strings.TrimSpace(info.FaxNumber),
		EquipmentCompanyCode: strings.TrimSpace(info.EquipmentCompanyCode),
		Status:               Status(strings.ToLower(strings.TrimSpace(string(info.Status)))),
		LastModified:         lastModified,
	}
}
