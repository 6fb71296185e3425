package constants

// NSQ topics for payment lifecycle events
const (
	TopicPaymentCompleted = "payment.completed"
)
