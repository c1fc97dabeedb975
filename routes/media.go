package routes

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"skillswap-server/config"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// uploadImage pushes a multipart image to Cloudinary and returns its secure URL
func uploadImage(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.AppConfig.Media.CloudinaryURL)
	if err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ow := true
	uf := true
	up, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &ow,
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		return "", err
	}
	return up.SecureURL, nil
}
