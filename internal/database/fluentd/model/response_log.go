package model

// ResponseLog 與 RequestLog 以 request_id 對應
type ResponseLog struct {
	RequestID   string `json:"request_id"`
	ProjectName string `json:"project_name,omitempty"`
	Route       string `json:"route,omitempty"`
	// 應用錯誤碼，成功時為 0
	Code       int    `json:"code"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
	Version    string `json:"version,omitempty"`
	ResponseTS string `json:"response_ts"`
	LoggedAt   string `json:"logged_at"`
}
