package contract

import "context"

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

type IUUIDGenerator interface {
	NewUUID() string
}

type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
	GenerateHexToken(n int) (string, error)
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// IImageUploader stores a base64 data URI image under folder and returns its public URL.
type IImageUploader interface {
	UploadImage(ctx context.Context, dataURI string, folder string) (string, error)
}
