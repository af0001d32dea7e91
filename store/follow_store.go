package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follow inserts the edge follower -> following. It returns false, and
// persists nothing, when the edge already exists, either user does not exist,
// the two ids are equal, or the store fails.
func (s *Store) Follow(ctx context.Context, followerID uint, followingID uint) bool {
	fields := logrus.Fields{"follower_id": followerID, "following_id": followingID}
	if followerID == followingID {
		Logger.Log.WithFields(fields).Info("reject self follow")
		return false
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.FollowerAssociation{FollowerID: followerID, FollowingID: followingID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return errDuplicate
		}
		return nil
	})
	if err != nil {
		Logger.Log.WithFields(fields).WithError(err).Warn("fail to follow user")
		return false
	}
	return true
}

// Unfollow removes the edge follower -> following. Removing an edge that does
// not exist is a success, the edge is gone either way.
func (s *Store) Unfollow(ctx context.Context, followerID uint, followingID uint) bool {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&model.FollowerAssociation{}).Error
	})
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"follower_id": followerID, "following_id": followingID}).
			WithError(err).Error("fail to unfollow user")
		return false
	}
	return true
}
