package app_setting

import (
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/tribe/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	LocalFileStore = "local"
	S3FileStore    = "s3"
	FakeFileStore  = "fake"
)

// AppSetting is the api server setting. Every field can be overridden by an
// env var of the same name, env wins over yaml.
type AppSetting struct {
	// Base url prepended to stored media paths when rendering attachments.
	PUBLIC_BASE_URL string `yaml:"PUBLIC_BASE_URL"`
	// Prefix of every uploaded object key, e.g. "uploads".
	UPLOAD_ROOT string `yaml:"UPLOAD_ROOT"`
	// Directory served under /<UPLOAD_ROOT> when FILE_STORE is "local".
	LOCAL_STORE_DIR string `yaml:"LOCAL_STORE_DIR"`
	// One of "local", "s3" or "fake".
	FILE_STORE string `yaml:"FILE_STORE"`
	S3_BUCKET  string `yaml:"S3_BUCKET"`
	S3_REGION  string `yaml:"S3_REGION"`
	// Lower case file extensions accepted by the media upload, dot included.
	ALLOWED_EXTENSIONS []string `yaml:"ALLOWED_EXTENSIONS"`
	// Uploads larger than this are rejected.
	MAX_UPLOAD_BYTES int64 `yaml:"MAX_UPLOAD_BYTES"`
	// DogStatsD address, counters are mirrored there when set.
	STATSD_ADDR string `yaml:"STATSD_ADDR"`
}

func DefaultAppSetting() AppSetting {
	return AppSetting{
		PUBLIC_BASE_URL:    "http://localhost",
		UPLOAD_ROOT:        "uploads",
		LOCAL_STORE_DIR:    ".",
		FILE_STORE:         LocalFileStore,
		S3_REGION:          "us-west-1",
		ALLOWED_EXTENSIONS: []string{".jpg", ".jpeg", ".png"},
		MAX_UPLOAD_BYTES:   10 << 20,
	}
}

// ParseAppSetting reads the yaml at path on top of the defaults, then applies
// env overrides. An empty path skips the file.
func ParseAppSetting(path string) (AppSetting, error) {
	s := DefaultAppSetting()
	if path != "" {
		yamlFile, err := ioutil.ReadFile(path)
		if err != nil {
			return s, errors.Wrapf(err, "fail to read app setting %s", path)
		}
		if err := yaml.Unmarshal(yamlFile, &s); err != nil {
			return s, errors.Wrapf(err, "fail to parse app setting %s", path)
		}
	}
	if err := s.applyEnv(); err != nil {
		return s, err
	}
	s.PUBLIC_BASE_URL = strings.TrimRight(s.PUBLIC_BASE_URL, "/")
	s.UPLOAD_ROOT = strings.Trim(s.UPLOAD_ROOT, "/")
	for i, ext := range s.ALLOWED_EXTENSIONS {
		s.ALLOWED_EXTENSIONS[i] = strings.ToLower(ext)
	}
	return s, s.validate()
}

func (s *AppSetting) applyEnv() error {
	setString := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}
	setString("PUBLIC_BASE_URL", &s.PUBLIC_BASE_URL)
	setString("UPLOAD_ROOT", &s.UPLOAD_ROOT)
	setString("LOCAL_STORE_DIR", &s.LOCAL_STORE_DIR)
	setString("FILE_STORE", &s.FILE_STORE)
	setString("S3_BUCKET", &s.S3_BUCKET)
	setString("S3_REGION", &s.S3_REGION)
	setString("STATSD_ADDR", &s.STATSD_ADDR)

	if v, ok := os.LookupEnv("ALLOWED_EXTENSIONS"); ok {
		s.ALLOWED_EXTENSIONS = utils.ParseCommaSeparated(v)
	}
	if v, ok := os.LookupEnv("MAX_UPLOAD_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid MAX_UPLOAD_BYTES %q", v)
		}
		s.MAX_UPLOAD_BYTES = n
	}
	return nil
}

func (s *AppSetting) validate() error {
	switch s.FILE_STORE {
	case LocalFileStore, FakeFileStore:
	case S3FileStore:
		if s.S3_BUCKET == "" {
			return errors.New("S3_BUCKET is required when FILE_STORE is s3")
		}
	default:
		return errors.Errorf("unknown FILE_STORE %q", s.FILE_STORE)
	}
	if s.MAX_UPLOAD_BYTES <= 0 {
		return errors.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", s.MAX_UPLOAD_BYTES)
	}
	return nil
}

// IsAllowedExtension reports whether ext (with its dot, any case) may be
// uploaded.
func (s *AppSetting) IsAllowedExtension(ext string) bool {
	return utils.ContainsString(s.ALLOWED_EXTENSIONS, strings.ToLower(ext))
}
