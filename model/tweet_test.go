package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetAttachments(t *testing.T) {
	tweetId := uint(1)
	tweet := Tweet{
		Id: tweetId,
		Medias: []*Media{
			{Id: 1, Path: "/uploads/1/a.png", TweetID: &tweetId},
			{Id: 2, Path: "uploads/1/b.jpg", TweetID: &tweetId},
			{Id: 3, Path: "///uploads/1/c.jpeg", TweetID: &tweetId},
		},
	}

	require.Equal(t, []string{
		"http://localhost/uploads/1/a.png",
		"http://localhost/uploads/1/b.jpg",
		"http://localhost/uploads/1/c.jpeg",
	}, tweet.Attachments("http://localhost"))
}

func TestTweetAttachmentsEmpty(t *testing.T) {
	tweet := Tweet{}
	attachments := tweet.Attachments("http://localhost")
	assert.NotNil(t, attachments)
	assert.Empty(t, attachments)
}

func TestValidateTweetContent(t *testing.T) {
	assert.Nil(t, ValidateTweetContent("hello"))
	assert.Nil(t, ValidateTweetContent(strings.Repeat("a", MaxTweetContentLength)))
	// multi-byte characters are counted as one each
	assert.Nil(t, ValidateTweetContent(strings.Repeat("ж", MaxTweetContentLength)))

	assert.Equal(t, ErrEmptyTweetContent, ValidateTweetContent(""))
	assert.Equal(t, ErrEmptyTweetContent, ValidateTweetContent("   \n"))
	assert.Equal(t, ErrTweetContentTooLong, ValidateTweetContent(strings.Repeat("a", MaxTweetContentLength+1)))
}
