package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑
func RootPath() string {
	// 透過 runtime.Caller(0) 回推到此檔案，再往上兩層：/project/utils/path/path.go → /project
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("❌ 無法取得 caller 位置")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Resolve 相對路徑接在 base/dirs... 之後；絕對路徑原樣回傳
func Resolve(p string, base string, dirs ...string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(append(append([]string{base}, dirs...), p)...)
}

// Exists 路径是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
