package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTweetContentLength = 300
)

var (
	ErrEmptyTweetContent   = errors.New("tweet content is empty")
	ErrTweetContentTooLong = errors.New("tweet content exceeds 300 characters")
)

/*

Tweet is a short text message posted by a user

Id: primary key, use to identify a tweet
CreatedAt: time when entity is created

Content: text of the tweet, at most MaxTweetContentLength characters
AuthorID:
Author: user who posted the tweet, "belongs-to" relation, immutable after creation
Likes: likes on this tweet, "has-many" relation, deleted together with the tweet
Medias: attached media, "has-many" relation, deleted together with the tweet

LikesCount: number of likes, only populated by the feed query

*/

type Tweet struct {
	Id         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	Content    string   `gorm:"size:300;not null"`
	AuthorID   uint     `gorm:"not null;index"`
	Author     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Likes      []*Like  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Medias     []*Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	LikesCount int64    `gorm:"->;-:migration"`
}

// Attachments returns the public URL of every attached media, built by joining
// publicBaseURL with the stored path.
func (t *Tweet) Attachments(publicBaseURL string) []string {
	urls := make([]string, 0, len(t.Medias))
	for _, media := range t.Medias {
		urls = append(urls, media.URL(publicBaseURL))
	}
	return urls
}

// ValidateTweetContent rejects blank content and content longer than
// MaxTweetContentLength characters.
func ValidateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyTweetContent
	}
	if utf8.RuneCountInString(content) > MaxTweetContentLength {
		return ErrTweetContentTooLong
	}
	return nil
}
