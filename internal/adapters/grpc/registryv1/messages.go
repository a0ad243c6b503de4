// Package registryv1 は会社・従業員サービスの gRPC メッセージとサービス定義です。
// メッセージは JSON コーデックでエンコードされます。
package registryv1

import "time"

// Company は会社メッセージです。
type Company struct {
	Id                   string    `json:"id,omitempty"`
	SiteId               string    `json:"siteId,omitempty"`
	CompanyCode          string    `json:"companyCode,omitempty"`
	CompanyName          string    `json:"companyName,omitempty"`
	AddressLine1         string    `json:"addressLine1,omitempty"`
	AddressLine2         string    `json:"addressLine2,omitempty"`
	AddressLine3         string    `json:"addressLine3,omitempty"`
	PostalZipCode        string    `json:"postalZipCode,omitempty"`
	Country              string    `json:"country,omitempty"`
	PhoneNumber          string    `json:"phoneNumber,omitempty"`
	FaxNumber            string    `json:"faxNumber,omitempty"`
	EquipmentCompanyCode string    `json:"equipmentCompanyCode,omitempty"`
	Status               string    `json:"status,omitempty"`
	LastModified         time.Time `json:"lastModified,omitzero"`
	CreatedAt            time.Time `json:"createdAt,omitzero"`
	UpdatedAt            time.Time `json:"updatedAt,omitzero"`
}

// Employee は従業員メッセージです。
type Employee struct {
	Id             string    `json:"id,omitempty"`
	SiteId         string    `json:"siteId,omitempty"`
	CompanyCode    string    `json:"companyCode,omitempty"`
	EmployeeCode   string    `json:"employeeCode,omitempty"`
	EmployeeName   string    `json:"employeeName,omitempty"`
	OccupationName string    `json:"occupationName,omitempty"`
	EmployeeStatus string    `json:"employeeStatus,omitempty"`
	EmailAddress   string    `json:"emailAddress,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	LastModified   time.Time `json:"lastModified,omitzero"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
	UpdatedAt      time.Time `json:"updatedAt,omitzero"`
}

// OperationResult は更新系操作の結果です。
type OperationResult struct {
	IsSuccess bool      `json:"isSuccess"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ListCompaniesRequest struct{}

type ListCompaniesResponse struct {
	Companies []*Company `json:"companies"`
}

type GetCompanyRequest struct {
	CompanyCode string `json:"companyCode"`
}

type GetCompanyByNameRequest struct {
	CompanyName string `json:"companyName"`
}

type GetCompanyResponse struct {
	Company *Company `json:"company"`
}

type CreateCompanyRequest struct {
	Company *Company `json:"company"`
}

type UpdateCompanyRequest struct {
	CompanyCode string   `json:"companyCode"`
	Company     *Company `json:"company"`
}

type DeleteCompanyRequest struct {
	CompanyCode string `json:"companyCode"`
}

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

type GetEmployeeRequest struct {
	EmployeeCode string `json:"employeeCode"`
}

type GetEmployeeByNameRequest struct {
	EmployeeName string `json:"employeeName"`
}

type GetEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type CreateEmployeeRequest struct {
	Employee *Employee `json:"employee"`
}

type UpdateEmployeeRequest struct {
	EmployeeCode string    `json:"employeeCode"`
	Employee     *Employee `json:"employee"`
}

type DeleteEmployeeRequest struct {
	EmployeeCode string `json:"employeeCode"`
}

// MutationResponse は作成・更新・削除の応答です。
type MutationResponse struct {
	Result *OperationResult `json:"result"`
}
