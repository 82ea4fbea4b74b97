package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data part of a list reply.
type Response map[string]interface{}

// Business codes carried next to the HTTP status.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Success writes a 200 reply.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Created writes a 201 reply with the new representation.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes a reply without field details.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// FieldError writes a reply listing the violated field constraints.
func FieldError(c *gin.Context, httpStatus int, code int, msg string, errs FieldErrors) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
		"errors":  errs,
	})
}
