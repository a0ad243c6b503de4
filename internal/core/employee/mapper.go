package employee

import (
	"strings"
	"time"
)

// EmployeeInfo はサービス境界でやり取りする従業員情報です。
type EmployeeInfo struct {
	ID             string    `json:"id,omitempty"`
	SiteID         string    `json:"siteId"`
	CompanyCode    string    `json:"companyCode"`
	Code           string    `json:"employeeCode"`
	Name           string    `json:"employeeName"`
	OccupationName string    `json:"occupationName,omitempty"`
	Status         Status    `json:"employeeStatus,omitempty"`
	EmailAddress   string    `json:"emailAddress,omitempty"`
	PhoneNumber    string    `json:"phone,omitempty"`
	LastModified   time.Time `json:"lastModified,omitzero"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
	UpdatedAt      time.Time `json:"updatedAt,omitzero"`
}

func ToInfo(e *Employee) *EmployeeInfo {
	if e == nil {
		return nil
	}
	return &EmployeeInfo{
		ID:             e.ID,
		SiteID:         e.SiteID,
		CompanyCode:    e.CompanyCode,
		Code:           e.Code,
		Name:           e.Name,
		OccupationName: e.OccupationName,
		Status:         e.Status,
		EmailAddress:   e.EmailAddress,
		PhoneNumber:    e.PhoneNumber,
		LastModified:   e.LastModified,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToInfos(employees []*Employee) []*EmployeeInfo {
	infos := make([]*EmployeeInfo, 0, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		infos = append(infos, ToInfo(e))
	}
	return infos
}

// ToEntity は EmployeeInfo をエンティティに変換します。メールアドレスは小文字に揃えます。
func ToEntity(info EmployeeInfo) *Employee {
	var lastModified time.Time
	if !info.LastModified.IsZero() {
		lastModified = info.LastModified.UTC()
	}
	return &Employee{
		SiteID:         strings.TrimSpace(info.SiteID),
		CompanyCode:    strings.TrimSpace(info.CompanyCode),
		Code:           strings.TrimSpace(info.Code),
		Name:           strings.TrimSpace(info.Name),
		OccupationName: strings.TrimSpace(info.OccupationName),
		Status:         Status(strings.ToLower(strings.TrimSpace(string(info.Status)))),
		EmailAddress:   strings.ToLower(strings.TrimSpace(info.EmailAddress)),
		PhoneNumber:    strings.TrimSpace(info.PhoneNumber),
		LastModified:   lastModified,
	}
}
