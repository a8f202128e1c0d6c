package filebed

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	appconfig "event-contact-system/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// FileBed 公告附件存储
// 本地目录保存 + 可选的 S3 预签名直传，二选一由配置决定
type FileBed struct {
	SaveDir string // 本地保存目录
	BaseURL string // 本地访问基础 URL

	Endpoint        string
	Bucket          string
	Region          string
	AccessKey       string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool

	s3Client *s3.Client
}

// New 根据配置创建附件存储实例
func New(cfg *appconfig.Config) *FileBed {
	return &FileBed{
		SaveDir:         filepath.Join(cfg.Storage.Home, "announcement"),
		BaseURL:         "/static/announcement",
		Endpoint:        cfg.S3.Endpoint,
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		AccessKey:       cfg.S3.AccessKey,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Prefix:          cfg.S3.Prefix,
		UsePathStyle:    cfg.S3.UsePathStyle,
	}
}

// S3Enabled 是否配置了对象存储
func (fb *FileBed) S3Enabled() bool {
	return fb.Bucket != ""
}

// InitS3 初始化 S3 客户端
func (fb *FileBed) InitS3(ctx context.Context) error {
	if fb.s3Client != nil {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(fb.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(fb.AccessKey, fb.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	fb.s3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if fb.Endpoint != "" {
			o.BaseEndpoint = &fb.Endpoint
		}
		o.UsePathStyle = fb.UsePathStyle
	})
	return nil
}

// SaveFile 将上传的附件保存到本地并返回访问 URL
func (fb *FileBed) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(fb.SaveDir, os.ModePerm); err != nil {
		return "", err
	}

	// 唯一文件名，保留原始扩展名
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.NewString() + ext
	filePath := filepath.Join(fb.SaveDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return fb.BaseURL + "/" + filename, nil
}
