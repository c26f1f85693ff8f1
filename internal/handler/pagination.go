package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/pagination-service/internal/model"
	"github.com/maxviazov/pagination-service/internal/service"
	"github.com/maxviazov/pagination-service/pkg/response"
)

type PaginationHandler struct {
	svc service.PaginationService
}

func NewPaginationHandler(svc service.PaginationService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/pagination")
	{
		g.GET("", h.fromQuery)
		g.POST("", h.fromBody)
	}
}

// paginateRequest uses pointers so an omitted field is distinguishable from zero.
type paginateRequest struct {
	TotalRecords *int `json:"total_records" binding:"required"`
	CurrentPage  *int `json:"current_page" binding:"required"`
	Limit        *int `json:"limit" binding:"required"`
}

func (h *PaginationHandler) fromQuery(c *gin.Context) {
	raw := make(map[string]string, len(c.Request.URL.Query()))
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 {
			raw[k] = vs[0]
		}
	}
	q, err := service.ParsePageQuery(raw)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	h.respond(c, q)
}

func (h *PaginationHandler) fromBody(c *gin.Context) {
	var req paginateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	h.respond(c, model.PageQuery{
		TotalRecords: *req.TotalRecords,
		CurrentPage:  *req.CurrentPage,
		Limit:        *req.Limit,
	})
}

func (h *PaginationHandler) respond(c *gin.Context, q model.PageQuery) {
	meta, err := h.svc.Paginate(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, meta)
}

var bindFieldNames = map[string]string{
	"TotalRecords": "total_records",
	"CurrentPage":  "current_page",
	"Limit":        "limit",
}

// bindError turns binding failures into field errors; malformed JSON is reported
// as plain invalid input without parser details.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return service.ErrInvalidInput
	}
	fields := make([]service.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := bindFieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		msg := "is invalid"
		if fe.Tag() == "required" {
			msg = "is required"
		}
		fields = append(fields, service.FieldError{Field: name, Message: msg})
	}
	return service.NewInvalidInput(fields)
}
