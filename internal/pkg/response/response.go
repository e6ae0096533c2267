package response

import (
	"Arcadia/internal/api/dto"
	"Arcadia/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Fail 失败返回封装，状态码即 HTTP 状态码
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorDTO{Error: message})
}

// Error 处理错误：业务错误按 ErrorMap 映射，其余按 500 收口并留日志
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrMalformedPayload.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrMalformedPayload.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "internal error", "err", err)
		Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	Fail(c, status, err.Error())
}
