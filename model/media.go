package model

import (
	"strings"
	"time"
)

/*

Media is one uploaded file, referenced by its storage path

Id: primary key
CreatedAt: time when entity is created
Path: key of the file in the blob store, relative to the public base url
TweetID: tweet the media is attached to. NULL means uploaded but not yet
	attached. Set exactly once, there is no detach. If tweet row is deleted,
	media row is deleted.

Media uploaded and never attached stays in the table forever.

*/

type Media struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Path      string `gorm:"not null"`
	TweetID   *uint  `gorm:"index"`
}

func (Media) TableName() string {
	return "media"
}

// URL is publicBaseURL joined with the stored path, leading slashes of the
// path stripped.
func (m *Media) URL(publicBaseURL string) string {
	return publicBaseURL + "/" + strings.TrimLeft(m.Path, "/")
}
