package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Like records userID liking tweetID and returns the new row. It returns nil
// when the user already likes the tweet, the user or tweet does not exist, or
// the store fails. Concurrent likes of the same pair leave exactly one row.
func (s *Store) Like(ctx context.Context, userID uint, tweetID uint) *model.Like {
	like := model.Like{UserID: userID, TweetID: tweetID}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return errDuplicate
		}
		return nil
	})
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"user_id": userID, "tweet_id": tweetID}).
			WithError(err).Warn("fail to like tweet")
		return nil
	}
	return &like
}

// Unlike removes the like of userID on tweetID. Unliking a tweet that is not
// liked succeeds.
func (s *Store) Unlike(ctx context.Context, userID uint, tweetID uint) bool {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&model.Like{}).Error
	})
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"user_id": userID, "tweet_id": tweetID}).
			WithError(err).Error("fail to unlike tweet")
		return false
	}
	return true
}
