package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

const (
	profilePictureFolder = "profile_pictures"
	eventImageFolder     = "event_images"
)

// resolveImage turns a submitted image value into the URL to store.
// A data URI is uploaded, an empty string resets to fallback, any other
// value is kept as given. ok is false when nothing was submitted.
func resolveImage(ctx context.Context, uploader contract.IImageUploader, value *string, folder, fallback string) (url string, ok bool, err error) {
	if value == nil {
		return "", false, nil
	}
	v := strings.TrimSpace(*value)
	switch {
	case v == "":
		return fallback, true, nil
	case strings.HasPrefix(v, "data:image"):
		if uploader == nil {
			return "", false, newError(ErrUpload, "image uploads are not configured")
		}
		url, err := uploader.UploadImage(ctx, v, folder)
		if err != nil {
			return "", false, newError(ErrUpload, fmt.Sprintf("Error uploading image: %v", err))
		}
		return url, true, nil
	default:
		return v, true, nil
	}
}
