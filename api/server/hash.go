package server

import (
	"io/ioutil"
	"net/http"
	"strconv"

	"jenkins/pkg/hashkit"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func listMethods(c *gin.Context) {
	listJSON(c, hashkit.Methods())
}

func getHash(c *gin.Context) {
	key, ok := c.GetQuery("key")
	if !ok {
		eJSON(c, errors.Wrap(errBadParam, "missing key"))
		return
	}
	n, err := lenQuery(c)
	if err != nil {
		eJSON(c, err)
		return
	}
	d, err := svc.Hash(c.Param("method"), []byte(key), n)
	if err != nil {
		eJSON(c, err)
		return
	}
	d.Value = key[:d.Len]
	c.JSON(http.StatusOK, d)
}

func postHash(c *gin.Context) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBody))
	if err != nil {
		eJSON(c, errors.Wrapf(errBodyTooLarge, "limit %d bytes: %v", maxBody, err))
		return
	}
	n, err := lenQuery(c)
	if err != nil {
		eJSON(c, err)
		return
	}
	d, err := svc.Hash(c.Param("method"), body, n)
	if err != nil {
		eJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func getNode(c *gin.Context) {
	key, ok := c.GetQuery("key")
	if !ok {
		eJSON(c, errBadParam)
		return
	}
	node, err := svc.Node(key)
	if err != nil {
		eJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// lenQuery parses ?len=N; -1 when absent.
func lenQuery(c *gin.Context) (int, error) {
	s, ok := c.GetQuery("len")
	if !ok {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errBadParam, "len %q", s)
	}
	if n < 0 {
		return 0, errors.Wrapf(hashkit.ErrInvalidLength, "len %d", n)
	}
	return n, nil
}
