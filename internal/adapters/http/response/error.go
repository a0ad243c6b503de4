package response

import (
	"errors"
	"net/http"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/request"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
)

// HandleError はドメインエラーを HTTP 応答に変換します。
func HandleError(w http.ResponseWriter, err error) {
	var validationErr *request.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, validationErr.Error(), validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, request.ErrMalformedBody):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, company.ErrInvalidCode),
		errors.Is(err, company.ErrInvalidName),
		errors.Is(err, company.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidCode),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found.")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found.")
	default:
		InternalServerError(w, err.Error())
	}
}
