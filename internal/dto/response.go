package dto

import (
	"fmt"
	"net/http"
	"strings"

	res "terminal-terrace/conduit/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse 渲染业务错误
// 业务错误一律 400（变更操作即使目标不存在也返回 400），未认证 401，
// 基础设施故障 500 且不向外暴露内部细节
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	status := http.StatusBadRequest
	switch err.Code {
	case res.Unauthorized:
		status = http.StatusUnauthorized
	case res.Internal:
		c.JSON(http.StatusInternalServerError, res.NewError("internal server error"))
		return
	}
	c.JSON(status, res.NewError(err.Messages...))
}

// NotFoundOrErrorResponse 用于纯查询接口：NotFound 渲染为 404，其余同 ErrorResponse
func NotFoundOrErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Code == res.NotFound {
		c.JSON(http.StatusNotFound, res.NewError(err.Messages...))
		return
	}
	ErrorResponse(c, err)
}

// ValidationErrorResponse 处理请求绑定校验错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, validationMessage(fieldErr))
		}
		if len(messages) > 0 {
			ErrorResponse(c, res.NewBusinessError(
				res.WithErrorCode(res.ParseError),
				res.WithErrorMessage(strings.Join(messages, "; ")),
			))
			return
		}
	}

	// 非校验错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request body: "+err.Error()),
	))
}

func validationMessage(fe validator.FieldError) string {
	jsonField := toLowerCamel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", jsonField)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", jsonField)
	case "max":
		return fmt.Sprintf("The %s field may not exceed %s characters.", jsonField, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", jsonField, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", jsonField)
	}
}

// toLowerCamel 将结构体字段名转换为 JSON 风格的 lowerCamelCase
func toLowerCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
