// Package notify implements the time-windowed notification dispatch jobs.
// Each job polls on a fixed period and selects records whose timestamp falls
// in a window exactly as wide as that period; see window.go.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dangolbeeker/streamhive/core"
)

var tracer = otel.Tracer("notify")

const (
	// HourlyPeriod is the poll interval of the new-subscribers and
	// subscription-created-streams jobs.
	HourlyPeriod = time.Hour
	// ImminentPeriod is the poll interval of the imminent-streams job.
	ImminentPeriod = time.Minute
)

const (
	subjectNewSubscribers = "You have new subscribers"
	subjectCreatedStreams = "New streams from your subscriptions"
	subjectImminent       = "Streams starting soon"
)

type service struct {
	schedule core.ScheduleService
	profile  core.ProfileService
	mailer   core.EmailSender
	config   core.Config

	newSubsGuard  tickGuard
	createdGuard  tickGuard
	imminentGuard tickGuard
}

// NewService is for wire.go
func NewService(schedule core.ScheduleService, profile core.ProfileService, mailer core.EmailSender, config core.Config) core.NotifyService {
	return &service{
		schedule: schedule,
		profile:  profile,
		mailer:   mailer,
		config:   config,
	}
}

// DispatchNewSubscribers emails each streamer who gained subscribers in the
// last hour, one batch per streamer.
func (s *service) DispatchNewSubscribers(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "Notify.Service.DispatchNewSubscribers")
	defer span.End()

	if !s.config.Mail.Enabled {
		return
	}
	s.newSubsGuard.check(ctx, "new-subscribers", now, HourlyPeriod)

	window := Trailing(now, HourlyPeriod)
	edges, err := s.profile.ListSubscriptionsCreatedBetween(ctx, window.Since, window.Until)
	if err != nil {
		span.RecordError(err)
		s.logError(ctx, "fail to list new subscriptions", err)
		return
	}

	byOwner := make(map[string][]core.Subscription)
	for _, edge := range edges {
		if edge.UserID == nil {
			continue
		}
		byOwner[*edge.UserID] = append(byOwner[*edge.UserID], edge)
	}

	for ownerID, subs := range byOwner {
		owner, err := s.profile.GetUser(ctx, ownerID)
		if err != nil {
			s.logError(ctx, fmt.Sprintf("fail to load user %s", ownerID), err)
			continue
		}
		if !owner.EmailSettings.Enabled || !owner.EmailSettings.NewSubscribers {
			continue
		}

		var items []core.EmailItem
		for _, edge := range subs {
			subscriber, err := s.profile.GetUser(ctx, edge.SubscriberID)
			if err != nil {
				s.logError(ctx, fmt.Sprintf("fail to load subscriber %s", edge.SubscriberID), err)
				continue
			}
			items = append(items, core.EmailItem{
				Title:  subscriber.DisplayName,
				Detail: "@" + subscriber.Username,
				URL:    subscriber.ProfilePicURL,
			})
		}
		s.send(ctx, owner, subjectNewSubscribers, items)
	}
}

// DispatchCreatedStreams emails each subscriber the streams their
// subscriptions scheduled in the last hour, one batch per recipient.
func (s *service) DispatchCreatedStreams(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "Notify.Service.DispatchCreatedStreams")
	defer span.End()

	if !s.config.Mail.Enabled {
		return
	}
	s.createdGuard.check(ctx, "created-streams", now, HourlyPeriod)

	window := Trailing(now, HourlyPeriod)
	streams, err := s.schedule.ListUserOwnedCreatedBetween(ctx, window.Since, window.Until)
	if err != nil {
		span.RecordError(err)
		s.logError(ctx, "fail to list created scheduled streams", err)
		return
	}

	recipients := make(map[string]core.User)
	batches := make(map[string][]core.EmailItem)
	for _, stream := range streams {
		owner, err := s.profile.GetUser(ctx, *stream.UserID)
		if err != nil {
			s.logError(ctx, fmt.Sprintf("fail to load user %s", *stream.UserID), err)
			continue
		}
		subscribers, err := s.profile.ListSubscribers(ctx, owner.ID)
		if err != nil {
			s.logError(ctx, fmt.Sprintf("fail to list subscribers of %s", owner.ID), err)
			continue
		}
		item := streamItem(stream, owner.Username)
		for _, subscriber := range subscribers {
			if !subscriber.EmailSettings.Enabled || !subscriber.EmailSettings.SubscriptionCreatedStreams {
				continue
			}
			recipients[subscriber.ID] = subscriber
			batches[subscriber.ID] = append(batches[subscriber.ID], item)
		}
	}

	for id, items := range batches {
		s.send(ctx, recipients[id], subjectCreatedStreams, items)
	}
}

// DispatchImminentStreams runs every minute and emails each recipient the
// streams starting exactly their configured lead time from now, covering both
// true subscriptions and manually-pinned non-subscribed streams.
func (s *service) DispatchImminentStreams(ctx context.Context, now time.Time) {
	ctx, span := tracer.Start(ctx, "Notify.Service.DispatchImminentStreams")
	defer span.End()

	if !s.config.Mail.Enabled {
		return
	}
	s.imminentGuard.check(ctx, "imminent-streams", now, ImminentPeriod)

	recipients := make(map[string]core.User)
	batches := make(map[string][]core.EmailItem)

	for _, lead := range core.ScheduledStreamLeadTimes {
		window := Lead(now, time.Duration(lead)*time.Minute, ImminentPeriod)
		streams, err := s.schedule.ListStartingBetween(ctx, window.Since, window.Until)
		if err != nil {
			span.RecordError(err)
			s.logError(ctx, "fail to list imminent scheduled streams", err)
			continue
		}

		for _, stream := range streams {
			for _, recipient := range s.imminentRecipients(ctx, stream) {
				if !recipient.EmailSettings.Enabled || recipient.EmailSettings.ScheduledStreamStartingIn != lead {
					continue
				}
				if _, ok := recipients[recipient.ID]; !ok {
					recipients[recipient.ID] = recipient
				}
				batches[recipient.ID] = append(batches[recipient.ID], streamItem(stream, ""))
			}
		}
	}

	for id, items := range batches {
		s.send(ctx, recipients[id], subjectImminent, items)
	}
}

// imminentRecipients is the union of the owner's subscribers (the streamer's
// for user-owned streams, the parent event's for stage-owned ones) and
// everyone who pinned the stream, deduplicated.
func (s *service) imminentRecipients(ctx context.Context, stream core.ScheduledStream) []core.User {
	seen := make(map[string]bool)
	var out []core.User

	kind, ownerID, err := stream.Owner()
	if err != nil {
		s.logError(ctx, fmt.Sprintf("skip scheduled stream %s", stream.ID), err)
		return nil
	}

	var subscribers []core.User
	if kind == core.OwnerUser {
		subscribers, err = s.profile.ListSubscribers(ctx, ownerID)
		if err != nil {
			s.logError(ctx, fmt.Sprintf("fail to list subscribers of %s", ownerID), err)
		}
	} else {
		// stage-owned streams notify the parent event's subscribers
		stage, err := s.profile.GetEventStage(ctx, ownerID)
		if err != nil {
			s.logError(ctx, fmt.Sprintf("fail to load event stage %s", ownerID), err)
		} else {
			subscribers, err = s.profile.ListEventSubscribers(ctx, stage.EventID)
			if err != nil {
				s.logError(ctx, fmt.Sprintf("fail to list subscribers of event %s", stage.EventID), err)
			}
		}
	}
	for _, subscriber := range subscribers {
		if !seen[subscriber.ID] {
			seen[subscriber.ID] = true
			out = append(out, subscriber)
		}
	}

	pinned, err := s.profile.ListPinnedUsers(ctx, stream.ID)
	if err != nil {
		s.logError(ctx, fmt.Sprintf("fail to list pinned users of %s", stream.ID), err)
	}
	for _, user := range pinned {
		if !seen[user.ID] {
			seen[user.ID] = true
			out = append(out, user)
		}
	}

	return out
}

// send suppresses empty batches: a recipient with nothing qualifying this
// tick never reaches the mailer.
func (s *service) send(ctx context.Context, recipient core.User, subject string, items []core.EmailItem) {
	if len(items) == 0 {
		return
	}
	err := s.mailer.Notify(ctx, recipient, subject, items)
	if err != nil {
		s.logError(ctx, fmt.Sprintf("fail to notify %s", recipient.ID), err)
	}
}

func (s *service) logError(ctx context.Context, msg string, err error) {
	slog.ErrorContext(
		ctx,
		msg,
		slog.String("error", err.Error()),
		slog.String("module", "notify"),
	)
}

func streamItem(stream core.ScheduledStream, owner string) core.EmailItem {
	detail := stream.StartTime.UTC().Format(time.RFC1123)
	if stream.Category != "" {
		detail = stream.Category + " · " + detail
	}
	if owner != "" {
		detail = "@" + owner + " · " + detail
	}
	return core.EmailItem{
		Title:  stream.Title,
		Detail: detail,
	}
}
