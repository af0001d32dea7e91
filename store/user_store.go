package store

import (
	"context"

	"github.com/Luismorlan/tribe/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FindUserByAPIKey authenticates a request. It returns nil, nil when no user
// owns the key, callers must then treat the request as unauthenticated.
func (s *Store) FindUserByAPIKey(ctx context.Context, apiKey string) (*model.UserProfile, error) {
	if apiKey == "" {
		return nil, nil
	}
	return s.findUserProfile(ctx, "api_key = ?", apiKey)
}

// FindUserByID returns nil, nil when the user does not exist.
func (s *Store) FindUserByID(ctx context.Context, userID uint) (*model.UserProfile, error) {
	return s.findUserProfile(ctx, "id = ?", userID)
}

func (s *Store) findUserProfile(ctx context.Context, query string, args ...interface{}) (*model.UserProfile, error) {
	var user model.User
	res := s.conn(ctx).Where(query, args...).Limit(1).Find(&user)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "fail to query user")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	followers, err := s.followersOf(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	following, err := s.followingOf(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &model.UserProfile{
		User:      user,
		Followers: followers,
		Following: following,
	}, nil
}

// followersOf lists users following userID, in follow order.
func (s *Store) followersOf(ctx context.Context, userID uint) ([]*model.User, error) {
	return s.usersByEdge(ctx,
		"JOIN follower_association ON follower_association.follower_id = users.id",
		"follower_association.following_id = ?", userID)
}

// followingOf lists users followed by userID, in follow order.
func (s *Store) followingOf(ctx context.Context, userID uint) ([]*model.User, error) {
	return s.usersByEdge(ctx,
		"JOIN follower_association ON follower_association.following_id = users.id",
		"follower_association.follower_id = ?", userID)
}

func (s *Store) usersByEdge(ctx context.Context, join string, query string, userID uint) ([]*model.User, error) {
	users := []*model.User{}
	err := s.conn(ctx).
		Model(&model.User{}).
		Joins(join).
		Where(query, userID).
		Order("follower_association.created_at, users.id").
		Find(&users).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "fail to query follow edges")
	}
	return users, nil
}
