package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dangolbeeker/streamhive/core"
	mock_core "github.com/dangolbeeker/streamhive/core/mock"
)

var ctx = context.Background()

var mailEnabled = core.Config{Mail: core.Mail{Enabled: true}}

func TestDispatchNewSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := "owner000000000000000"

	owner := core.User{
		ID:          ownerID,
		Username:    "owner",
		Email:       "owner@example.com",
		DisplayName: "Owner",
		EmailSettings: core.EmailSettings{
			Enabled:        true,
			NewSubscribers: true,
		},
	}
	sub1 := core.User{ID: "sub1", Username: "fan1", DisplayName: "Fan One"}
	sub2 := core.User{ID: "sub2", Username: "fan2", DisplayName: "Fan Two"}

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().ListSubscriptionsCreatedBetween(gomock.Any(), now.Add(-time.Hour), now).Return([]core.Subscription{
		{SubscriberID: sub1.ID, UserID: &ownerID},
		{SubscriberID: sub2.ID, UserID: &ownerID},
	}, nil)
	mockProfile.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
	mockProfile.EXPECT().GetUser(gomock.Any(), sub1.ID).Return(sub1, nil)
	mockProfile.EXPECT().GetUser(gomock.Any(), sub2.ID).Return(sub2, nil)

	mockSchedule := mock_core.NewMockScheduleService(ctrl)

	mockMailer := mock_core.NewMockEmailSender(ctrl)
	mockMailer.EXPECT().Notify(gomock.Any(), owner, subjectNewSubscribers, gomock.Len(2)).Return(nil)

	s := NewService(mockSchedule, mockProfile, mockMailer, mailEnabled)
	s.DispatchNewSubscribers(ctx, now)
}

// an owner who opted out never reaches the mailer
func TestDispatchNewSubscribersHonorsSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := "owner000000000000000"

	owner := core.User{
		ID: ownerID,
		EmailSettings: core.EmailSettings{
			Enabled:        true,
			NewSubscribers: false,
		},
	}

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().ListSubscriptionsCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.Subscription{
		{SubscriberID: "sub1", UserID: &ownerID},
	}, nil)
	mockProfile.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)

	mockSchedule := mock_core.NewMockScheduleService(ctrl)
	mockMailer := mock_core.NewMockEmailSender(ctrl)

	s := NewService(mockSchedule, mockProfile, mockMailer, mailEnabled)
	s.DispatchNewSubscribers(ctx, now)
}

func TestDispatchCreatedStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := "owner000000000000000"

	owner := core.User{ID: ownerID, Username: "owner"}
	wants := core.User{
		ID: "sub1",
		EmailSettings: core.EmailSettings{
			Enabled:                    true,
			SubscriptionCreatedStreams: true,
		},
	}
	optedOut := core.User{
		ID: "sub2",
		EmailSettings: core.EmailSettings{
			Enabled:                    true,
			SubscriptionCreatedStreams: false,
		},
	}

	stream := core.ScheduledStream{
		ID:        "stream00000000000000",
		UserID:    &ownerID,
		Title:     "launch party",
		Category:  "music",
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(26 * time.Hour),
	}

	mockSchedule := mock_core.NewMockScheduleService(ctrl)
	mockSchedule.EXPECT().ListUserOwnedCreatedBetween(gomock.Any(), now.Add(-time.Hour), now).Return([]core.ScheduledStream{stream}, nil)

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().GetUser(gomock.Any(), ownerID).Return(owner, nil)
	mockProfile.EXPECT().ListSubscribers(gomock.Any(), ownerID).Return([]core.User{wants, optedOut}, nil)

	mockMailer := mock_core.NewMockEmailSender(ctrl)
	mockMailer.EXPECT().Notify(gomock.Any(), wants, subjectCreatedStreams, gomock.Len(1)).DoAndReturn(
		func(ctx context.Context, recipient core.User, subject string, items []core.EmailItem) error {
			assert.Equal(t, "launch party", items[0].Title)
			assert.Contains(t, items[0].Detail, "@owner")
			assert.Contains(t, items[0].Detail, "music")
			return nil
		},
	)

	s := NewService(mockSchedule, mockProfile, mockMailer, mailEnabled)
	s.DispatchCreatedStreams(ctx, now)
}

// a subscriber with a 60-minute lead and a pinned viewer with a 30-minute lead
// are each mailed on their own tick, once
func TestDispatchImminentStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := "owner000000000000000"

	subscriber := core.User{
		ID: "sub1",
		EmailSettings: core.EmailSettings{
			Enabled:                   true,
			ScheduledStreamStartingIn: 60,
		},
	}
	pinned := core.User{
		ID: "pin1",
		EmailSettings: core.EmailSettings{
			Enabled:                   true,
			ScheduledStreamStartingIn: 30,
		},
	}

	stream := core.ScheduledStream{
		ID:        "stream00000000000000",
		UserID:    &ownerID,
		Title:     "launch party",
		StartTime: now.Add(60 * time.Minute),
		EndTime:   now.Add(2 * time.Hour),
	}

	mockSchedule := mock_core.NewMockScheduleService(ctrl)
	// selected only by the lead-60 window
	mockSchedule.EXPECT().ListStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, from, until time.Time) ([]core.ScheduledStream, error) {
			if !stream.StartTime.Before(from) && stream.StartTime.Before(until) {
				return []core.ScheduledStream{stream}, nil
			}
			return nil, nil
		},
	).Times(len(core.ScheduledStreamLeadTimes))

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().ListSubscribers(gomock.Any(), ownerID).Return([]core.User{subscriber}, nil)
	mockProfile.EXPECT().ListPinnedUsers(gomock.Any(), stream.ID).Return([]core.User{pinned}, nil)

	mockMailer := mock_core.NewMockEmailSender(ctrl)
	mockMailer.EXPECT().Notify(gomock.Any(), subscriber, subjectImminent, gomock.Len(1)).Return(nil)

	s := NewService(mockSchedule, mockProfile, mockMailer, mailEnabled)
	s.DispatchImminentStreams(ctx, now)
}

// a stage-owned stream notifies the parent event's subscribers
func TestDispatchImminentStreamsEventSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	stageID := "stage000000000000000"
	eventID := "event000000000000000"

	subscriber := core.User{
		ID: "sub1",
		EmailSettings: core.EmailSettings{
			Enabled:                   true,
			ScheduledStreamStartingIn: 60,
		},
	}

	stream := core.ScheduledStream{
		ID:           "stream00000000000000",
		EventStageID: &stageID,
		Title:        "main stage opening",
		StartTime:    now.Add(60 * time.Minute),
		EndTime:      now.Add(2 * time.Hour),
	}

	mockSchedule := mock_core.NewMockScheduleService(ctrl)
	mockSchedule.EXPECT().ListStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, from, until time.Time) ([]core.ScheduledStream, error) {
			if !stream.StartTime.Before(from) && stream.StartTime.Before(until) {
				return []core.ScheduledStream{stream}, nil
			}
			return nil, nil
		},
	).Times(len(core.ScheduledStreamLeadTimes))

	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockProfile.EXPECT().GetEventStage(gomock.Any(), stageID).Return(core.EventStage{ID: stageID, EventID: eventID}, nil)
	mockProfile.EXPECT().ListEventSubscribers(gomock.Any(), eventID).Return([]core.User{subscriber}, nil)
	mockProfile.EXPECT().ListPinnedUsers(gomock.Any(), stream.ID).Return(nil, nil)

	mockMailer := mock_core.NewMockEmailSender(ctrl)
	mockMailer.EXPECT().Notify(gomock.Any(), subscriber, subjectImminent, gomock.Len(1)).Return(nil)

	s := NewService(mockSchedule, mockProfile, mockMailer, mailEnabled)
	s.DispatchImminentStreams(ctx, now)
}

func TestDispatchDisabledMail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSchedule := mock_core.NewMockScheduleService(ctrl)
	mockProfile := mock_core.NewMockProfileService(ctrl)
	mockMailer := mock_core.NewMockEmailSender(ctrl)

	s := NewService(mockSchedule, mockProfile, mockMailer, core.Config{})
	now := time.Now()
	s.DispatchNewSubscribers(ctx, now)
	s.DispatchCreatedStreams(ctx, now)
	s.DispatchImminentStreams(ctx, now)
}
