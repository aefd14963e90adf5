package photostore

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MaxPhotoSize is the upload cap for member photos (5 MB)
const MaxPhotoSize = 5 * 1024 * 1024

var (
	ErrNotAnImage = errors.New("file must be an image")
	ErrTooLarge   = errors.New("file exceeds the 5MB limit")
)

// allowedTypes is the image MIME whitelist
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Config holds Cloudinary credentials
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// PhotoStore uploads and deletes member photos on Cloudinary
type PhotoStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New creates a photo store from config
func New(cfg Config) (*PhotoStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %v", err)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = "members"
	}
	return &PhotoStore{cld: cld, folder: folder}, nil
}

// Validate checks MIME type and size before any upload happens
func Validate(fileHeader *multipart.FileHeader) error {
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return ErrNotAnImage
	}
	if fileHeader.Size > MaxPhotoSize {
		return ErrTooLarge
	}
	return nil
}

// Upload validates and uploads a member photo, returning its secure URL
func (p *PhotoStore) Upload(file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if err := Validate(fileHeader); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploadResp, err := p.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: p.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %v", err)
	}

	return uploadResp.SecureURL, nil
}

// Delete removes a photo by its full URL
func (p *PhotoStore) Delete(imageURL string) error {
	publicID, err := extractPublicID(imageURL)
	if err != nil {
		return fmt.Errorf("could not extract public ID: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = p.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("delete error: %v", err)
	}

	return nil
}

// extractPublicID pulls the Cloudinary public ID out of a full URL
func extractPublicID(imageURL string) (string, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return "", err
	}

	// Example: https://res.cloudinary.com/demo/image/upload/v1234567890/members/abc123.jpg
	parts := strings.Split(parsedURL.Path, "/")
	if len(parts) < 6 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	// Path starts with /<cloud>/image/upload/, then an optional version segment
	rest := parts[4:]
	if strings.HasPrefix(rest[0], "v") && len(rest) > 1 {
		rest = rest[1:]
	}

	publicID := strings.TrimSuffix(path.Join(rest...), path.Ext(rest[len(rest)-1]))
	return publicID, nil
}
