// Package upload writes multipart files to the upload directory and hands back public URLs.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DefaultURLPrefix is where the upload directory is served.
const DefaultURLPrefix = "/uploads"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Sink names files <unix millis>-<sanitized name>. Two uploads with the same
// name in the same millisecond land on the same file and the later one wins.
type Sink struct {
	Dir       string
	URLPrefix string
	Now       func() time.Time
}

func NewSink(dir string) *Sink {
	return &Sink{Dir: dir, URLPrefix: DefaultURLPrefix, Now: time.Now}
}

// Sanitize replaces every character outside [a-zA-Z0-9._-] with an underscore.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// FileName is the on-disk name for an upload received at t.
func FileName(t time.Time, original string) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), Sanitize(original))
}

// Store saves the file and returns its public URL.
func (s *Sink) Store(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("no file")
	}
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	name := FileName(now(), fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}

	return s.URL(name), nil
}

// StoreAll saves every file in order. On failure the files already written are removed.
func (s *Sink) StoreAll(files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := s.Store(fh)
		if err != nil {
			_ = s.Remove(urls...)
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func (s *Sink) URL(name string) string {
	return strings.TrimRight(s.URLPrefix, "/") + "/" + name
}

// Remove deletes the files behind the given URLs. Missing files are not an error.
func (s *Sink) Remove(urls ...string) error {
	var first error
	for _, u := range urls {
		name := path.Base(u)
		if name == "." || name == "/" {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) && first == nil {
			first = fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return first
}
