package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error  string `json:"error"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorBody{Error: ve.Message, Title: "validation error", Detail: detail(ve.Err)})
			return
		}

		var ue *UnprocessableError
		if errors.As(err, &ue) {
			_ = c.JSON(http.StatusUnprocessableEntity, errorBody{Error: ue.Message, Title: "unprocessable", Detail: detail(ue.Err)})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorBody{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		slog.Error("Unhandled error", "error", err, "path", c.Path())
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func detail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
