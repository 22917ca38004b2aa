package model

// RequestLog 每個 API 請求一筆，送到 <prefix>.request_log
type RequestLog struct {
	RequestID string `json:"request_id"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	// gin 註冊的路由樣板，例如 /api/dates/:dateID
	Route       string `json:"route,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	Body        string `json:"body,omitempty"`
	IPHash      string `json:"ip_hash,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	Version     string `json:"version,omitempty"`
	RequestTS   string `json:"request_ts"`
	LoggedAt    string `json:"logged_at"`
}
