package app_setting

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSetting(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "setting.yaml")
	require.Nil(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseAppSettingDefaults(t *testing.T) {
	s, err := ParseAppSetting("")
	require.Nil(t, err)
	assert.Equal(t, DefaultAppSetting(), s)
	assert.True(t, s.IsAllowedExtension(".PNG"))
	assert.False(t, s.IsAllowedExtension(".gif"))
	assert.False(t, s.IsAllowedExtension(""))
}

func TestParseAppSettingFromFile(t *testing.T) {
	path := writeSetting(t, `
PUBLIC_BASE_URL: "https://cdn.example.com/"
UPLOAD_ROOT: "/media/"
FILE_STORE: "s3"
S3_BUCKET: "tribe-media"
ALLOWED_EXTENSIONS: [".PNG", ".webp"]
`)
	s, err := ParseAppSetting(path)
	require.Nil(t, err)
	assert.Equal(t, "https://cdn.example.com", s.PUBLIC_BASE_URL)
	assert.Equal(t, "media", s.UPLOAD_ROOT)
	assert.Equal(t, S3FileStore, s.FILE_STORE)
	assert.Equal(t, "tribe-media", s.S3_BUCKET)
	assert.Equal(t, []string{".png", ".webp"}, s.ALLOWED_EXTENSIONS)
	// untouched keys keep their default
	assert.Equal(t, int64(10<<20), s.MAX_UPLOAD_BYTES)
}

func TestParseAppSettingEnvOverride(t *testing.T) {
	path := writeSetting(t, `PUBLIC_BASE_URL: "https://from-file"`)
	t.Setenv("PUBLIC_BASE_URL", "https://from-env")
	t.Setenv("ALLOWED_EXTENSIONS", ".jpg, .gif")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	s, err := ParseAppSetting(path)
	require.Nil(t, err)
	assert.Equal(t, "https://from-env", s.PUBLIC_BASE_URL)
	assert.Equal(t, []string{".jpg", ".gif"}, s.ALLOWED_EXTENSIONS)
	assert.Equal(t, int64(1024), s.MAX_UPLOAD_BYTES)
}

func TestParseAppSettingInvalid(t *testing.T) {
	_, err := ParseAppSetting(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	_, err = ParseAppSetting(writeSetting(t, "FILE_STORE: [not a string"))
	assert.NotNil(t, err)

	_, err = ParseAppSetting(writeSetting(t, `FILE_STORE: "s3"`))
	assert.NotNil(t, err)

	_, err = ParseAppSetting(writeSetting(t, `FILE_STORE: "ftp"`))
	assert.NotNil(t, err)

	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	_, err = ParseAppSetting("")
	assert.NotNil(t, err)
}
