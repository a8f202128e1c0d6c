package announcement

import (
	"context"
	"strconv"
	"time"

	"event-contact-system/config"
	"event-contact-system/internal/global/filebed"
	"event-contact-system/internal/global/httpclient"
	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/role"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type CreateRequest struct {
	EventID  uint   `json:"event_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileURL  string `json:"file_url"`
}

// Create 发布公告，仅活动内 admin / core 可操作，附件元数据可选
func Create(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !requireEventRole(c, payload.UserID, req.EventID, role.Admin, role.Core) {
		return
	}

	id, err := st.CreateAnnouncement(c.Request.Context(), store.CreateAnnouncementParams{
		Text:           req.Text,
		AuthorUsername: payload.Username,
		EventID:        req.EventID,
		FileName:       req.FileName,
		FileType:       req.FileType,
		FileURL:        req.FileURL,
	})
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	go notifyWebhook(req.EventID, id, req.Text, payload.Username)

	log.Info("公告已发布", "event_id", req.EventID, "announcement_id", id, "author", payload.Username)
	response.Success(c, gin.H{"announcement_id": id})
}

// List 活动公告列表，仅成员可见，最新的在前
func List(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	eventID, ok := parseEventIDParam(c)
	if !ok {
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	list, err := st.EventAnnouncements(c.Request.Context(), eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, list)
}

// Upload 本地附件上传：S3 未配置时的兜底通道
func Upload(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	eventID, err := parseEventIDForm(c)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !requireEventRole(c, payload.UserID, eventID, role.Admin, role.Core) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少上传文件"))
		return
	}

	url, err := bed.SaveFile(fileHeader)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"file_url": url, "file_name": fileHeader.Filename})
}

type UploadURLRequest struct {
	EventID     uint   `json:"event_id" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UploadURL 签发 S3 预签名上传地址，前端直传附件不经过后端中转
func UploadURL(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !requireEventRole(c, payload.UserID, req.EventID, role.Admin, role.Core) {
		return
	}

	if !bed.S3Enabled() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未配置，请使用本地上传接口"))
		return
	}

	resp, err := bed.GeneratePresignedUploadURL(c.Request.Context(), filebed.PresignedUploadRequest{
		Filename:    req.FileName,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, resp)
}

// DownloadURL 为私有存储中的附件签发预签名下载地址，仅活动成员可用
func DownloadURL(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	eventID, err := strconv.ParseUint(c.Query("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("非法的活动 ID"))
		return
	}
	key := c.Query("key")
	if key == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少文件 key"))
		return
	}

	joined, err := st.CheckUserJoined(c.Request.Context(), payload.UserID, uint(eventID))
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未加入该活动"))
		return
	}

	if !bed.S3Enabled() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未配置"))
		return
	}

	url, err := bed.GeneratePresignedDownloadURL(c.Request.Context(), key, 0)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"download_url": url})
}

// requireEventRole 校验活动内角色，不满足时直接写出响应
func requireEventRole(c *gin.Context, userID, eventID uint, allowed ...string) bool {
	r, err := st.EventRole(c.Request.Context(), userID, eventID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return false
	}
	if !role.Has(r, allowed...) {
		response.Fail(c, response.ErrForbidden.WithTips("需要活动管理员或核心成员权限"))
		return false
	}
	return true
}

// notifyWebhook 向配置的回调地址推送公告内容，失败只记日志不影响主流程
func notifyWebhook(eventID, announcementID uint, text, author string) {
	url := config.Get().Webhook.AnnouncementURL
	if url == "" || httpclient.Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := httpclient.Client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"event_id":        eventID,
			"announcement_id": announcementID,
			"text":            text,
			"author":          author,
		}).
		Post(url)
	if err != nil {
		log.Warn("公告 webhook 推送失败", "err", err, "event_id", eventID)
	}
}

func parseEventIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("非法的活动 ID"))
		return 0, false
	}
	return uint(id), true
}

func parseEventIDForm(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.PostForm("event_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("非法的活动 ID")
	}
	return uint(id), nil
}
