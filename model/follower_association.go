package model

import "time"

/*

FollowerAssociation is a directed "follows" edge between two users

FollowerID: user who follows
FollowingID: user being followed
CreatedAt: time when relation is created

(FollowerID, FollowingID) is the primary key, so an edge exists at most once.
Both columns cascade on user deletion. Nothing at the storage layer stops a
user from following themselves, that check lives in the callers.

*/

type FollowerAssociation struct {
	FollowerID  uint `gorm:"primaryKey;autoIncrement:false;uniqueIndex:unique_followership"`
	Follower    User `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowingID uint `gorm:"primaryKey;autoIncrement:false;uniqueIndex:unique_followership;index"`
	Following   User `gorm:"foreignKey:FollowingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time
}

func (FollowerAssociation) TableName() string {
	return "follower_association"
}
