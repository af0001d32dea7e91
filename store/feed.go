package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Feed returns every tweet visible to viewerID: tweets by users the viewer
// follows and by the viewer itself. Tweets are ordered by number of likes,
// most liked first, and newest first among equally liked tweets. Author,
// likes with their users, and media are loaded on every tweet. A viewer with
// nothing to see gets an empty slice.
func (s *Store) Feed(ctx context.Context, viewerID uint) ([]*model.Tweet, error) {
	db := s.conn(ctx)

	following := db.Model(&model.FollowerAssociation{}).
		Select("following_id").
		Where("follower_id = ?", viewerID)

	tweets := []*model.Tweet{}
	err := db.Model(&model.Tweet{}).
		Select("tweets.*, COUNT(likes.id) AS likes_count").
		Joins("LEFT JOIN likes ON likes.tweet_id = tweets.id").
		Where("tweets.author_id IN (?) OR tweets.author_id = ?", following, viewerID).
		Group("tweets.id").
		Order("likes_count DESC, tweets.id DESC").
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.id")
		}).
		Preload("Likes.User").
		Preload("Medias", func(db *gorm.DB) *gorm.DB {
			return db.Order("media.id")
		}).
		Find(&tweets).Error
	if err != nil {
		return nil, errors.Wrap(err, "fail to query feed")
	}
	return tweets, nil
}
