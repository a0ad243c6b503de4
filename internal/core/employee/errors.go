package employee

import "errors"

var (
	// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidCode は従業員コードが不正な場合に返却されます。
	ErrInvalidCode = errors.New("invalid code")
	// ErrInvalidName は従業員名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
)

const (
	msgAlreadyExists  = "Employee already exists with the same EmployeeCode."
	msgSaved          = "Employee details saved successfully."
	msgSaveFailed     = "Failed to save employee details."
	msgNotFoundByCode = "Employee not found with the given employee code."
	msgSameDetails    = "Same employee details already exist."
	msgUpdated        = "Employee details updated successfully."
	msgUpdateFailed   = "Failed to update employee details."
	msgDeleteNotFound = "Employee not found."
	msgDeletedFormat  = "Employee with code %s was successfully deleted."
)
