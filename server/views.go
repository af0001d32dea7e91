package server

import (
	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/jinzhu/copier"
)

type UserSummaryView struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type UserView struct {
	Id        uint              `json:"id"`
	Name      string            `json:"name"`
	Followers []UserSummaryView `json:"followers"`
	Following []UserSummaryView `json:"following"`
}

type LikeView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

type TweetView struct {
	Id          uint            `json:"id"`
	Content     string          `json:"content"`
	Attachments []string        `json:"attachments"`
	Author      UserSummaryView `json:"author"`
	Likes       []LikeView      `json:"likes"`
}

func newUserSummaryView(user *model.User) UserSummaryView {
	view := UserSummaryView{}
	if err := copier.Copy(&view, user); err != nil {
		Logger.Log.WithError(err).Error("fail to copy user view")
	}
	return view
}

func newUserSummaryViews(users []*model.User) []UserSummaryView {
	views := make([]UserSummaryView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserSummaryView(user))
	}
	return views
}

func NewUserView(profile *model.UserProfile) UserView {
	summary := newUserSummaryView(&profile.User)
	return UserView{
		Id:        summary.Id,
		Name:      summary.Name,
		Followers: newUserSummaryViews(profile.Followers),
		Following: newUserSummaryViews(profile.Following),
	}
}

// NewTweetView renders a feed tweet, attachments are absolute urls under
// publicBaseURL.
func NewTweetView(tweet *model.Tweet, publicBaseURL string) TweetView {
	likes := make([]LikeView, 0, len(tweet.Likes))
	for _, like := range tweet.Likes {
		likes = append(likes, LikeView{UserID: like.UserID, Name: like.User.Name})
	}
	return TweetView{
		Id:          tweet.Id,
		Content:     tweet.Content,
		Attachments: tweet.Attachments(publicBaseURL),
		Author:      newUserSummaryView(&tweet.Author),
		Likes:       likes,
	}
}
