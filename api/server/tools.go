package server

import (
	"fmt"
	"net/http"

	"jenkins/api/model"
	"jenkins/pkg/hashkit"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var (
	errBadParam     = errors.New("bad param")
	errBodyTooLarge = errors.New("request body too large")
)

// eJSON will report error json into body
func eJSON(c *gin.Context, err error) {
	merr := map[string]interface{}{"error": fmt.Sprintf("%v", err)}
	switch errors.Cause(err) {
	case hashkit.ErrUnknownMethod:
		c.JSON(http.StatusNotFound, merr)
	case hashkit.ErrInvalidLength, errBadParam, errBodyTooLarge:
		c.JSON(http.StatusBadRequest, merr)
	case model.ErrNoRing:
		c.JSON(http.StatusServiceUnavailable, merr)
	default:
		c.JSON(http.StatusInternalServerError, merr)
	}
}

type list struct {
	Count int         `json:"count"`
	Items interface{} `json:"items"`
}

func listJSON(c *gin.Context, items []string) {
	c.JSON(http.StatusOK, &list{
		Count: len(items),
		Items: items,
	})
}
