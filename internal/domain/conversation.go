package domain

import "time"

// Conversation links exactly two participants and one delivery.
type Conversation struct {
	ID           int64
	DeliveryID   int64
	Participant1 int64
	Participant2 int64
}

// MessageTypeDeliveryConfirmation marks the moment a delivery is confirmed
// complete. The latest such message is the authoritative completion time for
// reminder-interval math.
const MessageTypeDeliveryConfirmation = "deliveryConfirmation"

// Message belongs to a conversation.
type Message struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	MessageType    string
	CreatedAt      time.Time
}
