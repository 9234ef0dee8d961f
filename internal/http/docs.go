package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// openAPIDoc es el documento OpenAPI de la API, servido tal cual.
//
//go:embed openapi.json
var openAPIDoc []byte

func serveOpenAPIDoc(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDoc)
}
