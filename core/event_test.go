package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelEventNames(t *testing.T) {
	assert.Equal(t, "chatMessage_alice", ChannelEventName(KindChatMessage, "alice"))
	assert.Equal(t, "streamStarted_alice", ChannelEventName(KindStreamStarted, "alice"))
	assert.Equal(t, "streamEnded_alice", ChannelEventName(KindStreamEnded, "alice"))
	assert.Equal(t, "streamInfoUpdated_alice", ChannelEventName(KindStreamInfoUpdated, "alice"))
	assert.Equal(t, "liveStreamViewCount_alice", ChannelEventName(KindViewCount, "alice"))

	assert.Equal(t, []string{
		"chatMessage_alice",
		"streamStarted_alice",
		"streamEnded_alice",
		"streamInfoUpdated_alice",
		"liveStreamViewCount_alice",
	}, ChannelEventNames("alice"))
}

func TestJoinEventName(t *testing.T) {
	assert.Equal(t, "connection_alice", JoinEventName("alice"))

	id, ok := ParseJoinEventName("connection_alice")
	assert.True(t, ok)
	assert.Equal(t, "alice", id)

	_, ok = ParseJoinEventName("connection_")
	assert.False(t, ok)

	_, ok = ParseJoinEventName("chatMessage_alice")
	assert.False(t, ok)
}

func TestScheduledStreamOwner(t *testing.T) {
	user := "user0000000000000000"
	stage := "stage000000000000000"

	kind, id, err := ScheduledStream{ID: "s1", UserID: &user}.Owner()
	assert.NoError(t, err)
	assert.Equal(t, OwnerUser, kind)
	assert.Equal(t, user, id)

	kind, id, err = ScheduledStream{ID: "s2", EventStageID: &stage}.Owner()
	assert.NoError(t, err)
	assert.Equal(t, OwnerEventStage, kind)
	assert.Equal(t, stage, id)

	_, _, err = ScheduledStream{ID: "s3"}.Owner()
	assert.Error(t, err)

	_, _, err = ScheduledStream{ID: "s4", UserID: &user, EventStageID: &stage}.Owner()
	assert.Error(t, err)

	empty := ""
	_, _, err = ScheduledStream{ID: "s5", UserID: &empty}.Owner()
	assert.Error(t, err)
}

func TestScheduledStreamHasPrerecordedVideo(t *testing.T) {
	assert.False(t, ScheduledStream{}.HasPrerecordedVideo())
	assert.False(t, ScheduledStream{VideoBucket: "vods"}.HasPrerecordedVideo())
	assert.True(t, ScheduledStream{VideoBucket: "vods", VideoKey: "a.mp4"}.HasPrerecordedVideo())
}
