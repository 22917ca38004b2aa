package request

import (
	"errors"
	"regexp"
	"strings"

	cErr "lovedj/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator 請求結構可提供自訂的錯誤訊息
type Validator interface {
	GetMessages() ValidatorMessages
}

// ValidatorMessages key 為 "<欄位路徑>.<規則>"，例如 "ProfileA.Pronoun.oneof"；slice 索引寫成 .*
type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 將 validator 的錯誤轉成 ValidateErr，優先使用 request 提供的訊息
func GetError(request interface{}, err error) *cErr.Error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return cErr.ValidateErr("Parameter error")
	}

	messages := ValidatorMessages{}
	if v, ok := request.(Validator); ok {
		messages = v.GetMessages()
	}
	for _, v := range validationErrors {
		if message, exist := messages[fieldPath(v)+"."+v.Tag()]; exist {
			return cErr.ValidateErr(message)
		}
	}
	return cErr.ValidateErr(validationErrors[0].Error()) // Return the first error message
}

// fieldPath 去掉最外層型別名稱，"DateRequest.ProfileA.Pronoun" -> "ProfileA.Pronoun"
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return reg.ReplaceAllString(ns, ".*")
}
