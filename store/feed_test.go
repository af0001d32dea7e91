package store

import (
	"context"
	"testing"

	"github.com/Luismorlan/tribe/model"
	"github.com/Luismorlan/tribe/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func feedContents(tweets []*model.Tweet) []string {
	res := []string{}
	for _, t := range tweets {
		res = append(res, t.Content)
	}
	return res
}

func TestFeedEmpty(t *testing.T) {
	s := PrepareTestStore(t)
	alice := utils.TestCreateUserAndValidate(t, "alice", s.DB)

	tweets, err := s.Feed(context.Background(), alice.Id)
	require.Nil(t, err)
	require.NotNil(t, tweets)
	require.Empty(t, tweets)
}

func TestFeedVisibility(t *testing.T) {
	s := PrepareTestStore(t)
	ctx := context.Background()

	alice := utils.TestCreateUserAndValidate(t, "alice", s.DB)
	bob := utils.TestCreateUserAndValidate(t, "bob", s.DB)
	carol := utils.TestCreateUserAndValidate(t, "carol", s.DB)

	utils.TestCreateTweetAndValidate(t, alice.Id, "by alice", s.DB)
	utils.TestCreateTweetAndValidate(t, bob.Id, "by bob", s.DB)
	utils.TestCreateTweetAndValidate(t, carol.Id, "by carol", s.DB)
	// carol follows alice, which must not leak carol's tweet into alice's feed
	utils.TestFollowAndValidate(t, carol.Id, alice.Id, s.DB)

	t.Run("Test Own Tweets Without Following", func(t *testing.T) {
		tweets, err := s.Feed(ctx, alice.Id)
		require.Nil(t, err)
		require.Equal(t, []string{"by alice"}, feedContents(tweets))
	})

	t.Run("Test Followed Tweets", func(t *testing.T) {
		require.True(t, s.Follow(ctx, alice.Id, bob.Id))
		tweets, err := s.Feed(ctx, alice.Id)
		require.Nil(t, err)
		require.ElementsMatch(t, []string{"by alice", "by bob"}, feedContents(tweets))
	})

	t.Run("Test Unfollowed Tweets Disappear", func(t *testing.T) {
		require.True(t, s.Unfollow(ctx, alice.Id, bob.Id))
		tweets, err := s.Feed(ctx, alice.Id)
		require.Nil(t, err)
		require.Equal(t, []string{"by alice"}, feedContents(tweets))
	})

	t.Run("Test Follower Sees Followed", func(t *testing.T) {
		tweets, err := s.Feed(ctx, carol.Id)
		require.Nil(t, err)
		require.ElementsMatch(t, []string{"by alice", "by carol"}, feedContents(tweets))
	})
}

func TestFeedOrdering(t *testing.T) {
	s := PrepareTestStore(t)
	ctx := context.Background()

	alice := utils.TestCreateUserAndValidate(t, "alice", s.DB)
	bob := utils.TestCreateUserAndValidate(t, "bob", s.DB)
	carol := utils.TestCreateUserAndValidate(t, "carol", s.DB)
	utils.TestFollowAndValidate(t, alice.Id, bob.Id, s.DB)

	popular := utils.TestCreateTweetAndValidate(t, bob.Id, "popular", s.DB)
	utils.TestCreateTweetAndValidate(t, alice.Id, "old quiet", s.DB)
	liked := utils.TestCreateTweetAndValidate(t, alice.Id, "liked once", s.DB)
	utils.TestCreateTweetAndValidate(t, bob.Id, "new quiet", s.DB)

	utils.TestLikeAndValidate(t, alice.Id, popular.Id, s.DB)
	utils.TestLikeAndValidate(t, carol.Id, popular.Id, s.DB)
	utils.TestLikeAndValidate(t, bob.Id, liked.Id, s.DB)

	tweets, err := s.Feed(ctx, alice.Id)
	require.Nil(t, err)
	// more likes first, newer first among equally liked
	require.Equal(t, []string{"popular", "liked once", "new quiet", "old quiet"}, feedContents(tweets))

	counts := []int64{}
	for _, tweet := range tweets {
		counts = append(counts, tweet.LikesCount)
		require.Equal(t, int(tweet.LikesCount), len(tweet.Likes))
	}
	require.Equal(t, []int64{2, 1, 0, 0}, counts)

	// likes flip the order once they change
	utils.TestLikeAndValidate(t, alice.Id, liked.Id, s.DB)
	utils.TestLikeAndValidate(t, carol.Id, liked.Id, s.DB)
	tweets, err = s.Feed(ctx, alice.Id)
	require.Nil(t, err)
	require.Equal(t, []string{"liked once", "popular", "new quiet", "old quiet"}, feedContents(tweets))
}

func TestFeedLoadsRelations(t *testing.T) {
	s := PrepareTestStore(t)
	ctx := context.Background()

	alice := utils.TestCreateUserAndValidate(t, "alice", s.DB)
	bob := utils.TestCreateUserAndValidate(t, "bob", s.DB)
	utils.TestFollowAndValidate(t, alice.Id, bob.Id, s.DB)

	tweet := s.CreateTweet(ctx, bob.Id, "with pictures")
	require.NotNil(t, tweet)
	m1 := s.SaveMedia(ctx, "uploads/2/one.png", nil)
	m2 := s.SaveMedia(ctx, "/uploads/2/two.jpg", nil)
	attached, ok := s.AttachMedia(ctx, []uint{m1.Id, m2.Id}, tweet.Id)
	require.True(t, ok)
	require.Equal(t, int64(2), attached)
	require.NotNil(t, s.Like(ctx, alice.Id, tweet.Id))
	require.NotNil(t, s.Like(ctx, bob.Id, tweet.Id))

	tweets, err := s.Feed(ctx, alice.Id)
	require.Nil(t, err)
	require.Len(t, tweets, 1)

	got := tweets[0]
	require.Equal(t, tweet.Id, got.Id)
	require.Equal(t, "with pictures", got.Content)
	require.Equal(t, bob.Id, got.AuthorID)
	require.Equal(t, "bob", got.Author.Name)

	likers := []string{}
	for _, like := range got.Likes {
		likers = append(likers, like.User.Name)
	}
	if diff := cmp.Diff([]string{"alice", "bob"}, likers); diff != "" {
		t.Errorf("likers mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []string{
		"http://example.com/uploads/2/one.png",
		"http://example.com/uploads/2/two.jpg",
	}, got.Attachments("http://example.com"))
}
