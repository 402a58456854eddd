package uploader

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Result is the media provider's metadata for a completed upload.
type Result struct {
	URL         string
	Object      string
	ContentType string
	Size        int64
}

// Storage is the remote side of the uploader. Put streams an object and
// returns its public URL.
type Storage interface {
	Put(ctx context.Context, object, contentType string, r io.Reader) (string, error)
}

// Uploader pushes locally staged files to the media provider.
//
// The contract mirrors the account handlers' expectations: a missing path is
// a no-op, and any transmission failure deletes the staged file (best
// effort) and yields nil. Callers decide whether a nil result is fatal.
type Uploader struct {
	Store  Storage
	Logger *logrus.Logger
}

func New(store Storage, logger *logrus.Logger) *Uploader {
	return &Uploader{Store: store, Logger: logger}
}

// Upload transmits the file at localPath and returns the provider metadata,
// or nil when there was nothing to upload or the transfer failed.
func (u *Uploader) Upload(ctx context.Context, localPath string) *Result {
	if localPath == "" {
		return nil
	}

	mt, err := mimetype.DetectFile(localPath)
	if err != nil {
		return u.fail(localPath, err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return u.fail(localPath, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return u.fail(localPath, err)
	}

	ext := filepath.Ext(localPath)
	if ext == "" {
		ext = mt.Extension()
	}
	object := "media/" + uuid.NewString() + ext

	url, err := u.Store.Put(ctx, object, mt.String(), f)
	if err != nil {
		return u.fail(localPath, err)
	}

	if u.Logger != nil {
		u.Logger.WithFields(logrus.Fields{"object": object, "url": url}).Debug("media upload complete")
	}
	return &Result{URL: url, Object: object, ContentType: mt.String(), Size: st.Size()}
}

// fail swallows the error into a nil result; a failed local delete is not
// itself escalated.
func (u *Uploader) fail(localPath string, err error) *Result {
	if u.Logger != nil {
		u.Logger.WithError(err).WithField("path", localPath).Warn("media upload failed")
	}
	if rmErr := os.Remove(localPath); rmErr != nil && u.Logger != nil {
		u.Logger.WithError(rmErr).WithField("path", localPath).Debug("staged file cleanup failed")
	}
	return nil
}
