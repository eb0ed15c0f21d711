package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"github.com/socialpedia/backend/utils"
	Logger "github.com/socialpedia/backend/utils/log"
)

// uniqueViolation is the postgres SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func abortWithError(c *gin.Context, status int, code string, msg string) {
	c.JSON(status, gin.H{
		"code": code,
		"msg":  msg,
	})
	c.Abort()
}

func abortValidation(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, utils.ErrorValidation, err.Error())
}

func abortNotFound(c *gin.Context, msg string) {
	abortWithError(c, http.StatusNotFound, utils.ErrorNotFound, msg)
}

// abortInternal logs the underlying store/runtime failure and reports an
// opaque 500. No retry, the client decides what to do.
func abortInternal(c *gin.Context, err error) {
	Logger.Log.Error("internal error: ", err)
	abortWithError(c, http.StatusInternalServerError, utils.ErrorInternal, "internal error")
}
