package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SaveMedia records an uploaded file by its storage path. A nil tweetID leaves
// the media unattached. Returns nil on failure.
func (s *Store) SaveMedia(ctx context.Context, path string, tweetID *uint) *model.Media {
	media := model.Media{Path: path, TweetID: tweetID}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&media).Error
	})
	if err != nil {
		Logger.Log.WithField("path", path).WithError(err).Error("fail to save media")
		return nil
	}
	return &media
}

// AttachMedia attaches every still unattached media in mediaIDs to tweetID and
// returns how many rows it claimed. Ids that are unknown or already attached
// elsewhere are skipped, so a count lower than len(mediaIDs) is still a
// success. ok is false only when the store fails.
func (s *Store) AttachMedia(ctx context.Context, mediaIDs []uint, tweetID uint) (attached int64, ok bool) {
	if len(mediaIDs) == 0 {
		return 0, true
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&model.Media{}).
			Where("id IN ? AND tweet_id IS NULL", mediaIDs).
			Update("tweet_id", tweetID)
		attached = res.RowsAffected
		return res.Error
	})
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"media_ids": mediaIDs, "tweet_id": tweetID}).
			WithError(err).Error("fail to attach media")
		return 0, false
	}
	if attached != int64(len(mediaIDs)) {
		Logger.Log.WithFields(logrus.Fields{"media_ids": mediaIDs, "tweet_id": tweetID, "attached": attached}).
			Info("some media were not attached")
	}
	return attached, true
}
