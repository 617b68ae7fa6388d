package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytscribe/internal/dto"
	"ytscribe/internal/response"
	"ytscribe/log"
	apperrors "ytscribe/pkg/errors"
)

// SearchVideos handles POST /api/tool/search.
func (h Handler) SearchVideos(c *gin.Context) {
	requestID := uuid.NewString()

	var req dto.SearchVideosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("SearchVideos ShouldBindJSON err", zap.String("requestId", requestID), zap.Error(err))
		response.ErrorResponse(c, apperrors.Wrap(apperrors.CodeInvalidParams, "Invalid parameters", err))
		return
	}
	log.GetLogger().Info("SearchVideos received request",
		zap.String("requestId", requestID), zap.String("query", req.Query))

	data, err := h.Service.SearchVideos(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.Success(c, data)
}

// GetTranscript handles POST /api/tool/transcript.
func (h Handler) GetTranscript(c *gin.Context) {
	requestID := uuid.NewString()

	var req dto.GetTranscriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("GetTranscript ShouldBindJSON err", zap.String("requestId", requestID), zap.Error(err))
		response.ErrorResponse(c, apperrors.Wrap(apperrors.CodeInvalidParams, "Invalid parameters", err))
		return
	}
	log.GetLogger().Info("GetTranscript received request",
		zap.String("requestId", requestID), zap.String("url", req.URL))

	data, err := h.Service.FetchTranscript(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.Success(c, data)
}

// GetTranscriptSegments handles POST /api/tool/transcriptSegments.
func (h Handler) GetTranscriptSegments(c *gin.Context) {
	requestID := uuid.NewString()

	var req dto.GetTranscriptSegmentsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("GetTranscriptSegments ShouldBindJSON err", zap.String("requestId", requestID), zap.Error(err))
		response.ErrorResponse(c, apperrors.Wrap(apperrors.CodeInvalidParams, "Invalid parameters", err))
		return
	}
	log.GetLogger().Info("GetTranscriptSegments received request",
		zap.String("requestId", requestID), zap.String("url", req.URL),
		zap.Int("segmentLength", req.SegmentLength))

	data, err := h.Service.FetchTranscriptSegments(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.Success(c, data)
}
