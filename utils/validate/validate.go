package validate

import (
	"fmt"
	"lovedj/internal/core"
	cErr "lovedj/internal/pkg/error"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(c *gin.Context, obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		for _, key := range []string{"json", "form"} {
			tag := f.Tag.Get(key)
			if tag != "" && tag != "-" {
				return strings.Split(tag, ",")[0]
			}
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

// ParseUUID 解析路徑參數中的 uuid
func ParseUUID(c *gin.Context, key string) (id string, cause error, responseErr error) {
	parsed, err := uuid.Parse(c.Param(key))
	if err != nil {
		return "", err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return parsed.String(), nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return err, cErr.ValidateErr(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}

// BindQuery 綁定 query string（form tag）
func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, cErr.BadRequestParams(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}

var validProviders = []core.ProviderName{
	core.ProviderOpenAI,
	core.ProviderGoogle,
	core.ProviderMock,
}

func IsValidProviderName(provider string) bool {
	for _, v := range validProviders {
		if core.ProviderName(provider) == v {
			return true
		}
	}
	return false
}
