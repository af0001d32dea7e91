package utils

import (
	"fmt"
	"testing"

	"github.com/Luismorlan/tribe/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// create user with name, do sanity checks and returns it. The api key is
// derived from the name so tests can authenticate as the user.
func TestCreateUserAndValidate(t *testing.T, name string, db *gorm.DB) *model.User {
	t.Helper()
	user := model.User{Name: name, ApiKey: TestApiKey(name)}
	require.Nil(t, db.Create(&user).Error)
	require.NotZero(t, user.Id)
	require.Equal(t, name, user.Name)
	return &user
}

// TestApiKey is the api key TestCreateUserAndValidate assigns to name.
func TestApiKey(name string) string {
	return fmt.Sprintf("test-%s-key", name)
}

// create tweet with content for author, do sanity checks and returns it
func TestCreateTweetAndValidate(t *testing.T, authorId uint, content string, db *gorm.DB) *model.Tweet {
	t.Helper()
	tweet := model.Tweet{AuthorID: authorId, Content: content}
	require.Nil(t, db.Create(&tweet).Error)
	require.NotZero(t, tweet.Id)
	return &tweet
}

// create follow edge follower -> following, do sanity checks
func TestFollowAndValidate(t *testing.T, followerId uint, followingId uint, db *gorm.DB) {
	t.Helper()
	require.Nil(t, db.Create(&model.FollowerAssociation{FollowerID: followerId, FollowingID: followingId}).Error)
}

// create like of user on tweet, do sanity checks
func TestLikeAndValidate(t *testing.T, userId uint, tweetId uint, db *gorm.DB) {
	t.Helper()
	like := model.Like{UserID: userId, TweetID: tweetId}
	require.Nil(t, db.Create(&like).Error)
	require.NotZero(t, like.Id)
}

// TestCountRows counts rows of model matching query and args.
func TestCountRows(t *testing.T, db *gorm.DB, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.Nil(t, db.Model(value).Where(query, args...).Count(&count).Error)
	return count
}
