package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/request"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/response"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
)

// EmployeeHandler は /api/v1/employees の REST 実装です。
type EmployeeHandler struct {
	svc      employee.UseCase
	validate *request.Validator
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(svc employee.UseCase, validate *request.Validator) *EmployeeHandler {
	if validate == nil {
		validate = request.NewValidator(nil)
	}
	return &EmployeeHandler{svc: svc, validate: validate}
}

// Routes は従業員エンドポイントを登録します。
func (h *EmployeeHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/by-name/{employeeName}", h.GetByName)
	r.Get("/{employeeCode}", h.Get)
	r.Put("/{employeeCode}", h.Update)
	r.Delete("/{employeeCode}", h.Delete)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.GetAllEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.GetEmployeeByCode(r.Context(), chi.URLParam(r, "employeeCode"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, found)
}

func (h *EmployeeHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.GetEmployeeByName(r.Context(), chi.URLParam(r, "employeeName"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, found)
}

// Create は従業員を登録し、成功時は 201 を返します。
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.svc.CreateEmployee(r.Context(), req.toInfo())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusCreated)
}

// Update は従業員を部分更新します。対象の従業員コードはパスで指定します。
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.validate.StructExcept(req, "EmployeeCode"); err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.svc.UpdateEmployeeByCode(r.Context(), chi.URLParam(r, "employeeCode"), req.toInfo())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusOK)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteEmployeeByCode(r.Context(), chi.URLParam(r, "employeeCode"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusOK)
}
