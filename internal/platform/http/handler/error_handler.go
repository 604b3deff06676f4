package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse はプラットフォームレベルのエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFound はどのルートにも一致しないリクエストに404を返します。
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Endpoint not found"})
}

// InternalError はハンドラー内でpanicが発生した場合に500を返します。
// gin.CustomRecovery に渡して使用します。詳細はクライアントに返しません。
func InternalError(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
