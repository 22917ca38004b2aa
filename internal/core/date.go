package core

// DateStatus 約會紀錄狀態
type DateStatus string

const (
	DateStatusRunning  DateStatus = "running"
	DateStatusFinished DateStatus = "finished"
	DateStatusFailed   DateStatus = "failed"
)

// DateEventType SSE 事件名稱
type DateEventType string

const (
	DateEventStart  DateEventType = "start"
	DateEventTurn   DateEventType = "turn"
	DateEventRating DateEventType = "rating"
	DateEventDone   DateEventType = "done"
	DateEventError  DateEventType = "error"
)
