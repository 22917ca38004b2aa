package error

import (
	"context"
	"errors"
	"net/http"
)

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}

}
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return GatewayTimeout(err.Error())
	}
	return InternalServer(err.Error())
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_BODY
	return New(http.StatusBadRequest, errCode, "bad-request/body", errorDesc)
}
func ValidatePathParamsErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_PARAMS
	return New(http.StatusBadRequest, errCode, "bad-request/params", errorDesc)
}

// ✅ 模型相關錯誤
func UnsupportedProvider(errorDesc string) *Error {
	return New(http.StatusBadRequest, UNSUPPORTED_PROVIDER, "unsupported-provider", errorDesc)
}

func ModelNotAvailable(errorDesc string) *Error {
	return New(http.StatusBadRequest, MODEL_NOT_AVAILABLE, "model-not-available", errorDesc)
}

func CompletionFailed(errorDesc string) *Error {
	return New(http.StatusBadGateway, COMPLETION_FAILED, "completion-failed", errorDesc)
}

func DateNotFound(errorDesc string) *Error {
	return New(http.StatusNotFound, DATE_NOT_FOUND, "date-not-found", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ✅ 外部 API 錯誤 (502, 504)
func ExternalRequestError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_REQUEST_ERROR, "external-request-failed", errorDesc)
}

func ExternalResponseFormatError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_RESPONSE_FORMAT_ERROR, "external-response-invalid", errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusGatewayTimeout, GATEWAY_TIMEOUT, "gateway-timeout", errorDesc)
}

// ✅ 用戶請求錯誤 (400 系列)
func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}
func BadRequestParams(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request-params", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}
func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}
func (e *Error) ErrorDesc() string {
	return e.errorDesc
}
func (e *Error) Error() string {
	return e.errorMsg
}

// Is 以 errorCode 比對，讓 errors.Is(err, cErr.NotFound("")) 可用
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.errorCode == e.errorCode
}
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusTooManyRequests:
		return RateLimitExceeded(desc)
	case http.StatusBadGateway:
		return ExternalRequestError(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	case http.StatusGatewayTimeout:
		return GatewayTimeout(desc)
	default:
		return InternalServer(desc)
	}
}
