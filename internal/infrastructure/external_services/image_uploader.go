package external_services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

// uploadAPI is the part of the Cloudinary upload API we use.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader stores images on Cloudinary.
type CloudinaryUploader struct {
	api uploadAPI
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{api: &cld.Upload}, nil
}

var _ contract.IImageUploader = (*CloudinaryUploader)(nil)

// UploadImage uploads a base64 data URI into folder and returns its https URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, dataURI string, folder string) (string, error) {
	res, err := u.api.Upload(ctx, dataURI, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res == nil {
		return "", errors.New("cloudinary upload: empty response")
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: no URL returned")
	}
	return res.SecureURL, nil
}
