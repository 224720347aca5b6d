package core

// Event is the wire packet every relay message is wrapped in.
// It is ephemeral: owned by the publisher until handed to the relay, then by
// the relay until delivered. Never persisted.
type Event struct {
	Name    string `json:"eventName"`
	Payload any    `json:"payload,omitempty"`
}

// Per-channel event kinds. Channel-scoped event names are templated as
// "<kind>_<identifier>" where identifier is a username or an event-stage id.
const (
	KindChatMessage       = "chatMessage"
	KindStreamStarted     = "streamStarted"
	KindStreamEnded       = "streamEnded"
	KindStreamInfoUpdated = "streamInfoUpdated"
	KindViewCount         = "liveStreamViewCount"

	joinPrefix = "connection_"
)

// Chat-window events are scoped by the event id carried in the payload,
// not templated into the name.
const (
	EventChatOpened = "chatOpened"
	EventChatClosed = "chatClosed"
	EventChatAlert  = "chatAlert"

	// EventRelayError is published on a relay's own local registry when a
	// clustered delivery fails, so failures are observable as ordinary events.
	EventRelayError = "relayError"
)

// ChatAlert is the payload of an EventChatAlert event.
type ChatAlert struct {
	Recipient string `json:"recipient"`
	Alert     string `json:"alert"`
}

// ChannelEventName renders "<kind>_<identifier>".
func ChannelEventName(kind, identifier string) string {
	return kind + "_" + identifier
}

// JoinEventName renders the join event for a channel identifier.
func JoinEventName(identifier string) string {
	return joinPrefix + identifier
}

// ParseJoinEventName extracts the identifier from a join event name.
func ParseJoinEventName(name string) (string, bool) {
	if len(name) <= len(joinPrefix) || name[:len(joinPrefix)] != joinPrefix {
		return "", false
	}
	return name[len(joinPrefix):], true
}

// ChannelEventNames lists every channel-scoped event name for an identifier,
// in the order clients register their handlers.
func ChannelEventNames(identifier string) []string {
	return []string{
		ChannelEventName(KindChatMessage, identifier),
		ChannelEventName(KindStreamStarted, identifier),
		ChannelEventName(KindStreamEnded, identifier),
		ChannelEventName(KindStreamInfoUpdated, identifier),
		ChannelEventName(KindViewCount, identifier),
	}
}
