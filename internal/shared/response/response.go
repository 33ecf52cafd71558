package response

import (
	"github.com/gin-gonic/gin"
)

// PaginationMeta describes one offset window of a listing. Page is derived
// from the offset so clients that page by number keep working.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
	Page       int   `json:"page,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func NewPaginationMeta(total int64, offset, limit int) PaginationMeta {
	if offset < 0 {
		offset = 0
	}
	meta := PaginationMeta{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}
	if limit > 0 {
		meta.Page = offset/limit + 1
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}

type ErrorBody struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type Envelope struct {
	OK    bool            `json:"ok"`
	Data  interface{}     `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, Envelope{OK: true, Data: data, Meta: meta})
}

// Error writes the failure envelope, echoing the request id so a client
// report can be matched with the server log.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, Envelope{
		Error: &ErrorBody{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: c.GetString("request_id"),
		},
	})
}
