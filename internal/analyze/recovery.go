package analyze

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Rajan-007/Food-Recommendation-AI/internal/middleware"
)

// Recovery converts panics into the structured internal-error envelope.
// Panic details are suppressed in production responses; logs always carry
// them.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered request_id=%s: %v", middleware.GetRequestID(c), recovered)

		details := ""
		if !production {
			details = fmt.Sprint(recovered)
		}

		respondError(c, CodeInternalError, "An error occurred while processing your request.", details)
		c.Abort()
	})
}
