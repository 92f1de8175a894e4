package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("error", err),
					logger.String("request_id", GetRequestID(c)),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Kind:  string(domain.KindInternal),
					Error: "internal server error",
				})
			}
		}()

		c.Next()
	}
}
