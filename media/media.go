// Package media wraps the Cloudinary upload API behind the small
// uploader interface the posts service consumes.
package media

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/config"
)

// CloudinaryUploader pushes uploaded files to Cloudinary and returns
// their public HTTPS URLs.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	log    *logrus.Logger
}

// NewCloudinaryUploader creates an uploader from credentials.
func NewCloudinaryUploader(cfg *config.MediaConfig, log *logrus.Logger) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, apperror.NewConfigError("failed to initialize media client", err)
	}
	return &CloudinaryUploader{client: client, log: log}, nil
}

// Upload sends the file to Cloudinary and returns the secure URL of the
// hosted asset.
func (u *CloudinaryUploader) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "ripple"})
	if err != nil {
		return "", apperror.NewExternalServiceError("failed to upload media", err)
	}
	if resp.Error.Message != "" {
		return "", apperror.NewExternalServiceError("failed to upload media", nil)
	}
	u.log.WithFields(logrus.Fields{"file": filename, "url": resp.SecureURL}).Debug("media uploaded")
	return resp.SecureURL, nil
}
