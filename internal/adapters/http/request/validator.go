// Package request は REST API のリクエスト本文の読み取りと検証を行います。
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody はリクエスト本文が JSON として解釈できない場合に返却されます。
var ErrMalformedBody = errors.New("request body is malformed")

// ValidationError はフィールドごとの検証エラーです。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Validator は validator/v10 にアプリケーション固有のルールを登録したものです。
type Validator struct {
	validate *validator.Validate
}

// NewValidator は Validator を生成します。now は未来日時の判定に利用します。
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return t.IsZero() || !t.After(now())
	})

	return &Validator{validate: v}
}

// Struct は構造体全体を検証します。
func (v *Validator) Struct(s any) error {
	return translate(v.validate.Struct(s))
}

// StructExcept は指定したフィールドを除いて検証します。パスで識別子を受け取る更新で利用します。
func (v *Validator) StructExcept(s any, fields ...string) error {
	return translate(v.validate.StructExcept(s, fields...))
}

// DecodeJSON はリクエスト本文を dst に読み込みます。
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: body is required", ErrMalformedBody)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, exists := fields[fe.Field()]; exists {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "alphanum":
		return field + " must be alphanumeric."
	case "numeric":
		return field + " must be numeric."
	case "max":
		return field + " is too long."
	case "email":
		return field + " must be a valid email address."
	case "notfuture":
		return field + " must not be in the future."
	default:
		return field + " is invalid."
	}
}
