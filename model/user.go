package model

import "time"

/*

User is an account that can post tweets, like them and follow other users

Id: primary key, use to identify a user
CreatedAt: time when entity is created

Name: user's display name
ApiKey: static credential sent in the "api-key" header on every request,
	matched by exact equality. Unique across users.

Tweets, likes and follow edges all reference users with ON DELETE CASCADE, so
removing a user row removes everything the user owns. No code path deletes
users today.

*/

type User struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"size:50;not null"`
	ApiKey    string `gorm:"size:100;not null;uniqueIndex"`
}

// UserProfile is a user together with both directions of its follow graph.
// It is a read model, filled by explicit queries and never persisted.
type UserProfile struct {
	User
	Followers []*User
	Following []*User
}
