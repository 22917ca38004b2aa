package catalog

import "errors"

var (
	// ErrUnsupportedShape 列舉結果既不是 rows 也不是 provider 分組
	ErrUnsupportedShape = errors.New("catalog: unsupported catalog shape")
	// ErrEmptyCatalog 格式正確但沒有任何模型
	ErrEmptyCatalog = errors.New("catalog: empty catalog")
	// ErrEnumerationUnavailable 列舉來源無法連線或回傳錯誤
	ErrEnumerationUnavailable = errors.New("catalog: enumeration unavailable")
)

// Reason 將保底原因轉成指標 / 日誌用的短字串
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEnumerationUnavailable):
		return "unavailable"
	case errors.Is(err, ErrUnsupportedShape):
		return "unsupported_shape"
	case errors.Is(err, ErrEmptyCatalog):
		return "empty"
	default:
		return "unknown"
	}
}
