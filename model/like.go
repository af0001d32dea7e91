package model

import "time"

/*

Like is a user's like on a tweet

Id: primary key
CreatedAt: time when entity is created
UserID:
User: user who liked the tweet, "belongs-to" relation
TweetID: liked tweet, if tweet row is deleted, like is deleted

(UserID, TweetID) is unique, a user likes a given tweet at most once.

*/

type Like struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:unique_user_like"`
	User      User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TweetID   uint `gorm:"not null;uniqueIndex:unique_user_like;index"`
}
