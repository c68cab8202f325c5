package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in milliseconds since the epoch.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse wraps data in the common envelope.
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single entity as data.entry.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	data := map[string]interface{}{
		"entry":      entry,
		"references": references,
	}
	return NewOKResponse(data)
}

// NewListResponse wraps a collection as data.list.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return NewListResponseWithRange(list, references, false)
}

// NewListResponseWithRange is NewListResponse for paged lists whose limit cut
// off further items.
func NewListResponseWithRange(list interface{}, references ReferencesModel, limitExceeded bool) ResponseModel {
	data := map[string]interface{}{
		"limitExceeded": limitExceeded,
		"list":          list,
		"references":    references,
	}
	return NewOKResponse(data)
}
