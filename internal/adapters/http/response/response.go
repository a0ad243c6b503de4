// Package response は REST API の JSON 応答を組み立てます。
package response

import (
	"encoding/json"
	"net/http"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

// ErrorBody は失敗時の応答本文です。
type ErrorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON は payload を JSON として書き込みます。
func JSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Message: "Failed to encode response"})
	}
}

func OK(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, payload)
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Message: message, Details: details})
}

func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, ErrorBody{Message: message})
}

// InternalServerError は予期しないエラーを "An error occurred: <message>" として返します。
func InternalServerError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, ErrorBody{Message: "An error occurred: " + message})
}

// Result は更新系操作の結果を書き込みます。成功時は successStatus、失敗時は理由に応じたステータスを使います。
func Result(w http.ResponseWriter, res result.OperationResult, successStatus int) {
	if res.IsSuccess {
		JSON(w, successStatus, res)
		return
	}
	JSON(w, StatusForReason(res.Reason), res)
}

// StatusForReason は失敗理由を HTTP ステータスに変換します。
func StatusForReason(reason result.Reason) int {
	switch reason {
	case result.ReasonNotFound:
		return http.StatusNotFound
	case result.ReasonConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
