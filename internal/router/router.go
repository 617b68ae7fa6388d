package router

import (
	"github.com/gin-gonic/gin"

	"ytscribe/internal/handler"
)

func SetupRouter(r *gin.Engine) {
	api := r.Group("/api")

	hdl := handler.NewHandler()
	{
		api.POST("/tool/search", hdl.SearchVideos)
		api.POST("/tool/transcript", hdl.GetTranscript)
		api.POST("/tool/transcriptSegments", hdl.GetTranscriptSegments)
	}
}
