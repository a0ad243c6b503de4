package company

import "errors"

var (
	// ErrCompanyNotFound は会社が存在しない場合に返却されます。
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInvalidCode は会社コードが不正な場合に返却されます。
	ErrInvalidCode = errors.New("invalid code")
	// ErrInvalidName は会社名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
)

const (
	msgAlreadyExists  = "Company already found with the same company code."
	msgSaved          = "Company details saved successfully."
	msgSaveFailed     = "Failed to save company details."
	msgNotFoundByCode = "Company not found with the given company code."
	msgSameDetails    = "Same company details already exist."
	msgUpdated        = "Company details updated successfully."
	msgUpdateFailed   = "Failed to update company details."
	msgDeleteNotFound = "Company not found."
	msgDeletedFormat  = "Company with code %s was successfully deleted."
)
