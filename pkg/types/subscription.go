package types

// SubscribeAll subscribes to every category.
const SubscribeAll = "all"

// Subscription is one notification signup. Subscriptions are deduplicated on
// the (lower-cased email, category) pair.
type Subscription struct {
	Email        string `json:"email"`
	Category     string `json:"category"`
	SubscribedAt string `json:"subscribed_at"`
}
