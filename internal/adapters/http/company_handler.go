package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/request"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/response"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
)

// CompanyHandler は /api/v1/companies の REST 実装です。
type CompanyHandler struct {
	svc      company.UseCase
	validate *request.Validator
}

// NewCompanyHandler は CompanyHandler を生成します。
func NewCompanyHandler(svc company.UseCase, validate *request.Validator) *CompanyHandler {
	if validate == nil {
		validate = request.NewValidator(nil)
	}
	return &CompanyHandler{svc: svc, validate: validate}
}

// Routes は会社エンドポイントを登録します。
func (h *CompanyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/by-name/{companyName}", h.GetByName)
	r.Get("/{companyCode}", h.Get)
	r.Put("/{companyCode}", h.Update)
	r.Delete("/{companyCode}", h.Delete)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.GetAllCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, companies)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.GetCompanyByCode(r.Context(), chi.URLParam(r, "companyCode"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, found)
}

func (h *CompanyHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.GetCompanyByName(r.Context(), chi.URLParam(r, "companyName"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, found)
}

// Create は会社を登録し、成功時は 201 を返します。
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.svc.CreateCompany(r.Context(), req.toInfo())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusCreated)
}

// Update は会社を部分更新します。対象の会社コードはパスで指定します。
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.validate.StructExcept(req, "CompanyCode"); err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.svc.UpdateCompanyByCode(r.Context(), chi.URLParam(r, "companyCode"), req.toInfo())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusOK)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteCompanyByCode(r.Context(), chi.URLParam(r, "companyCode"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Result(w, res, http.StatusOK)
}
