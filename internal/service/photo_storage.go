package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clinic-backend/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// PhotoStorage writes uploaded files below the configured upload
// directory and returns the public URL path they are served from.
// File names are random so concurrent uploads never race on a path.
type PhotoStorage struct {
	dir     string
	baseURL string
	log     *logrus.Logger
}

func NewPhotoStorage(cfg config.UploadConfig, log *logrus.Logger) *PhotoStorage {
	return &PhotoStorage{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}
}

// Save stores the uploaded content under subdir and returns its public
// path, e.g. "/images/doctors/3f1c....jpg".
func (s *PhotoStorage) Save(subdir, originalFilename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedPhotoExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	targetDir := filepath.Join(s.dir, subdir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	targetPath := filepath.Join(targetDir, filename)

	f, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(targetPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	s.log.Infof("Stored upload %s", targetPath)
	return s.baseURL + "/" + subdir + "/" + filename, nil
}

// Remove deletes a previously stored file given its public path.
// A missing file is not an error.
func (s *PhotoStorage) Remove(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, s.baseURL+"/")
	if rel == publicPath || strings.Contains(rel, "..") {
		return fmt.Errorf("path %q is outside the upload dir", publicPath)
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
