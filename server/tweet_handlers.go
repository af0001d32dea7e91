package server

import (
	"net/http"

	"github.com/Luismorlan/tribe/model"
	"github.com/Luismorlan/tribe/server/metrics"
	"github.com/Luismorlan/tribe/server/middlewares"
	"github.com/Luismorlan/tribe/store"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type createTweetRequest struct {
	TweetData *string `json:"tweet_data"`
	// accepted as an alias of tweet_data
	Content       *string `json:"content"`
	TweetMediaIds []uint  `json:"tweet_media_ids"`
}

func (r *createTweetRequest) content() string {
	if r.TweetData != nil {
		return *r.TweetData
	}
	if r.Content != nil {
		return *r.Content
	}
	return ""
}

func (s *Server) CreateTweet(c *gin.Context) {
	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.AbortWithErrorType(c, http.StatusUnprocessableEntity, middlewares.ErrorTypeValidation, err.Error())
		return
	}
	content := req.content()
	if err := model.ValidateTweetContent(content); err != nil {
		middlewares.AbortWithErrorType(c, http.StatusUnprocessableEntity, middlewares.ErrorTypeValidation, err.Error())
		return
	}

	me := middlewares.CurrentUser(c)
	tweet := s.Store.CreateTweet(c.Request.Context(), me.Id, content)
	if tweet == nil {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not create tweet")
		return
	}
	s.Metrics.Observe(metrics.EventTweetCreated)

	// The tweet stands even when some media could not be attached.
	if attached, ok := s.Store.AttachMedia(c.Request.Context(), req.TweetMediaIds, tweet.Id); !ok {
		Logger.Log.WithFields(logrus.Fields{
			"tweet_id":  tweet.Id,
			"media_ids": req.TweetMediaIds,
			"attached":  attached,
		}).Warn("fail to attach media to new tweet")
	}

	c.JSON(http.StatusCreated, gin.H{
		"result":   true,
		"tweet_id": tweet.Id,
	})
}

func (s *Server) GetFeed(c *gin.Context) {
	me := middlewares.CurrentUser(c)
	tweets, err := s.Store.Feed(c.Request.Context(), me.Id)
	if err != nil {
		abortDatabaseError(c, err)
		return
	}
	if len(tweets) == 0 {
		middlewares.AbortWithError(c, http.StatusNotFound, "Tweets not found for current user")
		return
	}

	views := make([]TweetView, 0, len(tweets))
	for _, tweet := range tweets {
		views = append(views, NewTweetView(tweet, s.Setting.PUBLIC_BASE_URL))
	}
	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"tweets": views,
	})
}

func (s *Server) DeleteTweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	switch s.Store.DeleteTweet(c.Request.Context(), middlewares.CurrentUser(c).Id, id) {
	case store.Deleted:
		s.Metrics.Observe(metrics.EventTweetDeleted)
		c.JSON(http.StatusOK, gin.H{"result": true})
	case store.DeleteForbidden:
		middlewares.AbortWithError(c, http.StatusForbidden, "You can only delete your own tweets")
	case store.DeleteNotFound:
		middlewares.AbortWithError(c, http.StatusNotFound, "Tweet not found")
	default:
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not delete tweet")
	}
}

func (s *Server) LikeTweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if s.Store.Like(c.Request.Context(), middlewares.CurrentUser(c).Id, id) == nil {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not like tweet")
		return
	}
	s.Metrics.Observe(metrics.EventLike)
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (s *Server) UnlikeTweet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !s.Store.Unlike(c.Request.Context(), middlewares.CurrentUser(c).Id, id) {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not unlike tweet")
		return
	}
	s.Metrics.Observe(metrics.EventUnlike)
	c.JSON(http.StatusOK, gin.H{"result": true})
}
