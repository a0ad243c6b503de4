package result

import "time"

// Reason は失敗した操作の分類です。トランスポート層でのステータス変換に利用します。
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonNotFound    Reason = "not_found"
	ReasonConflict    Reason = "conflict"
	ReasonWriteFailed Reason = "write_failed"
	// ReasonUnchanged は成功したものの書き込みが不要だった結果に付きます。
	ReasonUnchanged Reason = "unchanged"
)

// OperationResult は更新系操作の結果を表します。
// 業務ルール違反はエラーではなく IsSuccess=false の結果として返却されます。
type OperationResult struct {
	IsSuccess bool      `json:"isSuccess"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Reason    Reason    `json:"reason,omitempty"`
}

// Succeeded は成功結果を生成します。
func Succeeded(message string, now time.Time) OperationResult {
	return OperationResult{
		IsSuccess: true,
		Message:   message,
		Timestamp: now.UTC(),
	}
}

// Unchanged は書き込みを行わなかった成功結果を生成します。
func Unchanged(message string, now time.Time) OperationResult {
	res := Succeeded(message, now)
	res.Reason = ReasonUnchanged
	return res
}

// Failed は失敗結果を生成します。
func Failed(reason Reason, message string, now time.Time) OperationResult {
	return OperationResult{
		IsSuccess: false,
		Message:   message,
		Timestamp: now.UTC(),
		Reason:    reason,
	}
}

// FromWrite は書き込み結果の真偽値から結果を組み立てます。
func FromWrite(ok bool, successMessage, failureMessage string, now time.Time) OperationResult {
	if ok {
		return Succeeded(successMessage, now)
	}
	return Failed(ReasonWriteFailed, failureMessage, now)
}

// WithMessage はメッセージのみを差し替えた結果を返します。
func (r OperationResult) WithMessage(message string) OperationResult {
	r.Message = message
	return r
}
