package core

import (
	"time"

	"github.com/lib/pq"
)

// StreamInfo is the broadcast metadata embedded into a User or an EventStage.
// The "is live" bit is never stored here; it is always derived from the ingest
// layer. ViewCount is server-authoritative and reset on each new broadcast.
type StreamInfo struct {
	StreamKey string         `json:"streamKey" gorm:"type:text"`
	Title     string         `json:"title" gorm:"type:text"`
	Genre     string         `json:"genre" gorm:"type:text"`
	Category  string         `json:"category" gorm:"type:text"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	ViewCount int            `json:"viewCount" gorm:"type:integer;default:0"`
	StartTime time.Time      `json:"startTime" gorm:"type:timestamp with time zone"`
}

// StreamProfile is the subset of StreamInfo the lifecycle job pre-fills from a
// schedule entry. StreamKey and ViewCount are deliberately not part of it.
type StreamProfile struct {
	Title    string
	Genre    string
	Category string
	Tags     []string
}

// EmailSettings holds a user's notification preferences.
// ScheduledStreamStartingIn is a lead time in minutes; 0 means never.
type EmailSettings struct {
	Enabled                    bool `json:"enabled" gorm:"type:boolean;default:false"`
	NewSubscribers             bool `json:"newSubscribers" gorm:"type:boolean;default:false"`
	SubscriptionCreatedStreams bool `json:"subscriptionCreatedStreams" gorm:"type:boolean;default:false"`
	ScheduledStreamStartingIn  int  `json:"scheduledStreamStartingIn" gorm:"type:integer;default:0"`
}

// ScheduledStreamLeadTimes are the selectable values for
// EmailSettings.ScheduledStreamStartingIn, in minutes.
var ScheduledStreamLeadTimes = []int{10, 30, 60, 120, 360, 1440}

// User is a streamer/viewer account.
// mutable
type User struct {
	ID            string        `json:"id" gorm:"primaryKey;type:char(20)"`
	Username      string        `json:"username" gorm:"type:text;uniqueIndex"`
	DisplayName   string        `json:"displayName" gorm:"type:text"`
	ProfilePicURL string        `json:"profilePicURL" gorm:"type:text"`
	Email         string        `json:"email" gorm:"type:text"`
	StreamInfo    StreamInfo    `json:"streamInfo" gorm:"embedded;embeddedPrefix:stream_"`
	EmailSettings EmailSettings `json:"emailSettings" gorm:"embedded;embeddedPrefix:email_"`
	// ScheduledStream ids the user pinned without subscribing to the owner.
	// Every id must reference a ScheduledStream that still exists; the expiry
	// reaper maintains that invariant when it deletes records.
	NonSubscribedScheduledStreams pq.StringArray `json:"nonSubscribedScheduledStreams" gorm:"type:text[]"`
	CDate                         time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate                         time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// LiveEvent is a multi-stage happening with a chat room bound to its schedule.
type LiveEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name      string    `json:"name" gorm:"type:text"`
	StartTime time.Time `json:"startTime" gorm:"type:timestamp with time zone"`
	EndTime   time.Time `json:"endTime" gorm:"type:timestamp with time zone"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// EventStage is one stage of a LiveEvent, with its own broadcast.
type EventStage struct {
	ID         string     `json:"id" gorm:"primaryKey;type:char(20)"`
	EventID    string     `json:"eventID" gorm:"type:char(20);index"`
	Name       string     `json:"name" gorm:"type:text"`
	StreamInfo StreamInfo `json:"streamInfo" gorm:"embedded;embeddedPrefix:stream_"`
	CDate      time.Time  `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// OwnerKind discriminates who a ScheduledStream belongs to.
type OwnerKind int

const (
	OwnerUser OwnerKind = iota
	OwnerEventStage
)

// ScheduledStream is a planned broadcast. Exactly one of UserID and
// EventStageID is set, and StartTime < EndTime.
type ScheduledStream struct {
	ID           string         `json:"id" gorm:"primaryKey;type:char(20)"`
	UserID       *string        `json:"userID" gorm:"type:char(20);index"`
	EventStageID *string        `json:"eventStageID" gorm:"type:char(20);index"`
	StartTime    time.Time      `json:"startTime" gorm:"type:timestamp with time zone;index"`
	EndTime      time.Time      `json:"endTime" gorm:"type:timestamp with time zone;index"`
	Title        string         `json:"title" gorm:"type:text"`
	Genre        string         `json:"genre" gorm:"type:text"`
	Category     string         `json:"category" gorm:"type:text"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	VideoBucket  string         `json:"videoBucket" gorm:"type:text"`
	VideoKey     string         `json:"videoKey" gorm:"type:text"`
	CDate        time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime;index"`
}

// Owner resolves the owner kind. A record with neither or both owner
// references violates the schema invariant and is reported as such, never
// silently coerced.
func (s ScheduledStream) Owner() (OwnerKind, string, error) {
	hasUser := s.UserID != nil && *s.UserID != ""
	hasStage := s.EventStageID != nil && *s.EventStageID != ""
	switch {
	case hasUser && !hasStage:
		return OwnerUser, *s.UserID, nil
	case hasStage && !hasUser:
		return OwnerEventStage, *s.EventStageID, nil
	default:
		return 0, "", NewErrorInvalidOwner(s.ID)
	}
}

// HasPrerecordedVideo reports whether the entry carries a blob reference.
func (s ScheduledStream) HasPrerecordedVideo() bool {
	return s.VideoBucket != "" && s.VideoKey != ""
}

// Profile returns the metadata the lifecycle job projects onto StreamInfo.
func (s ScheduledStream) Profile() StreamProfile {
	return StreamProfile{
		Title:    s.Title,
		Genre:    s.Genre,
		Category: s.Category,
		Tags:     s.Tags,
	}
}

// Subscription is an edge from a subscriber to a user or a live event.
// Read-only from this core's perspective.
type Subscription struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SubscriberID string    `json:"subscriberID" gorm:"type:char(20);index"`
	UserID       *string   `json:"userID" gorm:"type:char(20);index"`
	EventID      *string   `json:"eventID" gorm:"type:char(20);index"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime;index"`
}
