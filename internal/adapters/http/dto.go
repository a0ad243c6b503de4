package http

import (
	"time"

	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
)

// CompanyRequest は会社の作成・更新リクエストです。
type CompanyRequest struct {
	SiteID               string    `json:"siteId" validate:"omitempty,alphanum"`
	CompanyCode          string    `json:"companyCode" validate:"required,alphanum"`
	CompanyName          string    `json:"companyName" validate:"max=25"`
	AddressLine1         string    `json:"addressLine1" validate:"max=100"`
	AddressLine2         string    `json:"addressLine2" validate:"max=100"`
	AddressLine3         string    `json:"addressLine3" validate:"max=100"`
	PostalZipCode        string    `json:"postalZipCode" validate:"max=7"`
	Country              string    `json:"country"`
	PhoneNumber          string    `json:"phoneNumber" validate:"omitempty,numeric,max=10"`
	FaxNumber            string    `json:"faxNumber" validate:"max=20"`
	EquipmentCompanyCode string    `json:"equipmentCompanyCode" validate:"max=50"`
	Status               string    `json:"status"`
	LastModified         time.Time `json:"lastModified" validate:"notfuture"`
}

func (r CompanyRequest) toInfo() company.CompanyInfo {
	return company.CompanyInfo{
		SiteID:               r.SiteID,
		Code:                 r.CompanyCode,
		Name:                 r.CompanyName,
		AddressLine1:         r.AddressLine1,
		AddressLine2:         r.AddressLine2,
		AddressLine3:         r.AddressLine3,
		PostalZipCode:        r.PostalZipCode,
		Country:              r.Country,
		PhoneNumber:          r.PhoneNumber,
		FaxNumber:            r.FaxNumber,
		EquipmentCompanyCode: r.EquipmentCompanyCode,
		Status:               company.Status(r.Status),
		LastModified:         r.LastModified,
	}
}

// EmployeeRequest は従業員の作成・更新リクエストです。
type EmployeeRequest struct {
	SiteID         string    `json:"siteId" validate:"omitempty,alphanum"`
	CompanyCode    string    `json:"companyCode" validate:"required,alphanum,max=100"`
	EmployeeCode   string    `json:"employeeCode" validate:"required,alphanum"`
	EmployeeName   string    `json:"employeeName" validate:"required,max=50"`
	OccupationName string    `json:"occupationName" validate:"max=100"`
	EmployeeStatus string    `json:"employeeStatus" validate:"max=20"`
	EmailAddress   string    `json:"emailAddress" validate:"required,email"`
	Phone          string    `json:"phone" validate:"omitempty,numeric,max=10"`
	LastModified   time.Time `json:"lastModified" validate:"notfuture"`
}

func (r EmployeeRequest) toInfo() employee.EmployeeInfo {
	return employee.EmployeeInfo{
		SiteID:         r.SiteID,
		CompanyCode:    r.CompanyCode,
		Code:           r.EmployeeCode,
		Name:           r.EmployeeName,
		OccupationName: r.OccupationName,
		Status:         employee.Status(r.EmployeeStatus),
		EmailAddress:   r.EmailAddress,
		PhoneNumber:    r.Phone,
		LastModified:   r.LastModified,
	}
}
