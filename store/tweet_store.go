package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DeleteResult tells callers of DeleteTweet why a delete did or did not
// happen, so that "not yours" can be answered differently from "failed".
type DeleteResult int

const (
	DeleteFailed DeleteResult = iota
	Deleted
	DeleteNotFound
	DeleteForbidden
)

func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case DeleteNotFound:
		return "not_found"
	case DeleteForbidden:
		return "forbidden"
	default:
		return "failed"
	}
}

// CreateTweet stores a new tweet by authorID. It returns nil when content is
// blank or too long, the author does not exist, or the store fails.
func (s *Store) CreateTweet(ctx context.Context, authorID uint, content string) *model.Tweet {
	fields := logrus.Fields{"author_id": authorID}
	if err := model.ValidateTweetContent(content); err != nil {
		Logger.Log.WithFields(fields).WithError(err).Info("reject tweet")
		return nil
	}

	tweet := model.Tweet{AuthorID: authorID, Content: content}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&tweet).Error
	})
	if err != nil {
		Logger.Log.WithFields(fields).WithError(err).Error("fail to create tweet")
		return nil
	}
	return &tweet
}

// DeleteTweet deletes tweetID on behalf of callerID together with its likes
// and media. Only the author may delete a tweet.
func (s *Store) DeleteTweet(ctx context.Context, callerID uint, tweetID uint) DeleteResult {
	fields := logrus.Fields{"caller_id": callerID, "tweet_id": tweetID}

	var tweet model.Tweet
	res := s.conn(ctx).Where("id = ?", tweetID).Limit(1).Find(&tweet)
	if res.Error != nil {
		Logger.Log.WithFields(fields).WithError(res.Error).Error("fail to load tweet")
		return DeleteFailed
	}
	if res.RowsAffected == 0 {
		return DeleteNotFound
	}
	if tweet.AuthorID != callerID {
		Logger.Log.WithFields(fields).Info("reject deleting tweet of another user")
		return DeleteForbidden
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		// Author is checked again inside the transaction, the tweet might
		// have been removed since it was loaded.
		res := tx.Where("author_id = ?", callerID).Delete(&model.Tweet{}, tweetID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNotFound
		}
		return nil
	})
	if errors.Is(err, errNotFound) {
		return DeleteNotFound
	}
	if err != nil {
		Logger.Log.WithFields(fields).WithError(err).Error("fail to delete tweet")
		return DeleteFailed
	}
	return Deleted
}
