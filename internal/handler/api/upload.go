package api

import (
	"io"
	"net/http"
	"sort"
	"strconv"

	reqdto "brrow-engine/internal/handler/dto/request"
	resdto "brrow-engine/internal/handler/dto/response"
	"brrow-engine/internal/handler/httperr"
	"brrow-engine/internal/handler/middleware"
	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/errs"
	"brrow-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploads       usecase.UploadSessions
	maxAssetBytes int64
}

func NewUploadHandler(uploads usecase.UploadSessions, cfg config.Config) *UploadHandler {
	return &UploadHandler{uploads: uploads, maxAssetBytes: cfg.Upload.MaxAssetBytes}
}

// @Summary Start upload batch
// @Description Replace the caller's current batch with one pending tracker per asset.
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartBatchRequest true "Assets"
// @Success 201 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Router /uploads [post]
func (h *UploadHandler) StartBatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	var req reqdto.StartBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.uploads.StartBatch(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary Get upload batch
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /uploads/{batchId} [get]
func (h *UploadHandler) Get(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	h.respondOrAbort(c)(h.uploads.Batch(c.Request.Context(), userID, batchID))
}

// @Summary Begin asset upload
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/begin [post]
func (h *UploadHandler) Begin(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	h.respondOrAbort(c)(h.uploads.BeginUpload(c.Request.Context(), userID, batchID, c.Param("assetId")))
}

// @Summary Report asset progress
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Param request body reqdto.ProgressRequest true "Progress in [0,1]"
// @Success 200 {object} resdto.BatchResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/progress [post]
func (h *UploadHandler) Progress(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	var req reqdto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respondOrAbort(c)(h.uploads.ReportProgress(c.Request.Context(), userID, batchID, c.Param("assetId"), *req.Progress))
}

// @Summary Complete asset upload
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Param request body reqdto.CompleteRequest false "Stored location"
// @Success 200 {object} resdto.BatchResponse
// @Failure 409 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/complete [post]
func (h *UploadHandler) Complete(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	var req reqdto.CompleteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	h.respondOrAbort(c)(h.uploads.Complete(c.Request.Context(), userID, batchID, c.Param("assetId"), req.Location))
}

// @Summary Fail asset upload
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Param request body reqdto.FailRequest true "Failure reason"
// @Success 200 {object} resdto.BatchResponse
// @Failure 409 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/fail [post]
func (h *UploadHandler) Fail(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	var req reqdto.FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respondOrAbort(c)(h.uploads.Fail(c.Request.Context(), userID, batchID, c.Param("assetId"), req.Reason))
}

// @Summary Cancel asset upload
// @Description Idempotent. Stops the asset's transport if one is running.
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 404 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/cancel [post]
func (h *UploadHandler) Cancel(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	h.respondOrAbort(c)(h.uploads.Cancel(c.Request.Context(), userID, batchID, c.Param("assetId")))
}

// @Summary Cancel all uploads
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Success 200 {object} resdto.CancelAllResponse
// @Failure 404 {object} httperr.Response
// @Router /uploads/{batchId}/cancel [post]
func (h *UploadHandler) CancelAll(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	cancelled, view, err := h.uploads.CancelAll(c.Request.Context(), userID, batchID)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	batch, err := resdto.FromBatchView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if cancelled == nil {
		cancelled = []string{}
	}
	c.JSON(http.StatusOK, resdto.CancelAllResponse{Cancelled: cancelled, Batch: batch})
}

// @Summary Remove asset
// @Description Drop the tracker at a position. Uploading assets must be cancelled first.
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param index path int true "Tracker position"
// @Success 200 {object} resdto.BatchResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /uploads/{batchId}/assets/index/{index} [delete]
func (h *UploadHandler) Remove(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return
	}
	h.respondOrAbort(c)(h.uploads.RemoveAsset(c.Request.Context(), userID, batchID, index))
}

// @Summary Upload asset content
// @Description Send the raw image bytes to storage and track the transfer. A failed transfer is reported on the tracker.
// @Tags uploads
// @Accept octet-stream
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Param assetId path string true "Asset ID"
// @Param name query string false "File name"
// @Success 200 {object} resdto.BatchResponse
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /uploads/{batchId}/assets/{assetId}/content [put]
func (h *UploadHandler) UploadContent(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAssetBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Image exceeds the upload size limit", nil)
		return
	}

	src := usecase.UploadSource{
		AssetID:     c.Param("assetId"),
		Name:        c.Query("name"),
		ContentType: c.ContentType(),
		Data:        data,
	}
	view, err := h.uploads.UploadContent(c.Request.Context(), userID, batchID, src)
	if err != nil && !settledOnTracker(err) {
		httperr.Abort(c, err, nil)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Upload several assets
// @Description Multipart form, one file per asset with the asset ID as the field name. Transfers run concurrently.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param batchId path string true "Batch ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Router /uploads/{batchId}/files [post]
func (h *UploadHandler) UploadFiles(c *gin.Context) {
	userID, batchID, ok := batchParams(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}

	assetIDs := make([]string, 0, len(form.File))
	for id := range form.File {
		assetIDs = append(assetIDs, id)
	}
	sort.Strings(assetIDs)

	sources := make([]usecase.UploadSource, 0, len(assetIDs))
	for _, id := range assetIDs {
		fh := form.File[id][0]
		if fh.Size > h.maxAssetBytes {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errs.New("asset too large"), "Image exceeds the upload size limit", gin.H{"assetId": id})
			return
		}
		f, err := fh.Open()
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable file", gin.H{"assetId": id})
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable file", gin.H{"assetId": id})
			return
		}
		sources = append(sources, usecase.UploadSource{
			AssetID:     id,
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	if len(sources) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("no files"), "No files in request", nil)
		return
	}

	h.respondOrAbort(c)(h.uploads.UploadAll(c.Request.Context(), userID, batchID, sources))
}

// @Summary Discard uploads
// @Description Tear down the caller's upload session, cancelling every transfer.
// @Tags uploads
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /uploads [delete]
func (h *UploadHandler) Discard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	if err := h.uploads.Discard(c.Request.Context(), userID); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UploadHandler) respondOrAbort(c *gin.Context) func(usecase.BatchView, error) {
	return func(view usecase.BatchView, err error) {
		if err != nil {
			httperr.Abort(c, err, nil)
			return
		}
		h.respond(c, http.StatusOK, view)
	}
}

func (h *UploadHandler) respond(c *gin.Context, status int, view usecase.BatchView) {
	res, err := resdto.FromBatchView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

// settledOnTracker reports transfer outcomes that are already visible as a
// failed or cancelled tracker in the batch view.
func settledOnTracker(err error) bool {
	return errs.Is(err, errs.ErrUploadFailure) || errs.Is(err, errs.ErrUploadCancelled)
}

func batchParams(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return "", uuid.Nil, false
	}
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid batch id", nil)
		return "", uuid.Nil, false
	}
	return userID, batchID, true
}
