package archive

import (
	"regexp"
	"strings"
	"time"

	"github.com/pafa-project/pafa/pkg/types"
)

// emailShape is the deliberately simple local@domain.tld check used by the
// signup form. It is a shape test, not RFC 5322 validation.
var emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Subscribe records a notification signup for the given category (SubscribeAll
// when empty). Signups are deduplicated on the (case-insensitive email,
// category) pair; a duplicate returns the existing subscription with already
// set to true and persists nothing. An email failing the shape check is
// rejected without persisting.
func (s *Store) Subscribe(email, category string) (sub types.Subscription, already bool, err error) {
	email = strings.TrimSpace(email)
	if category == "" {
		category = types.SubscribeAll
	}
	if !emailShape.MatchString(email) {
		return types.Subscription{}, false, types.ErrInvalidEmail
	}

	var subs []types.Subscription
	s.loadJSON(NotifyKey, &subs)
	for _, existing := range subs {
		if strings.EqualFold(existing.Email, email) && existing.Category == category {
			return existing, true, nil
		}
	}

	sub = types.Subscription{
		Email:        email,
		Category:     category,
		SubscribedAt: s.now().UTC().Format(time.RFC3339),
	}
	subs = append(subs, sub)
	if err := s.saveJSON(NotifyKey, subs); err != nil {
		return types.Subscription{}, false, err
	}
	return sub, false, nil
}

// Unsubscribe removes the subscription matching the (case-insensitive email,
// category) pair. Category defaults to SubscribeAll when empty. Returns
// ErrNotSubscribed when no subscription matches.
func (s *Store) Unsubscribe(email, category string) error {
	email = strings.TrimSpace(email)
	if category == "" {
		category = types.SubscribeAll
	}

	var subs []types.Subscription
	s.loadJSON(NotifyKey, &subs)
	kept := make([]types.Subscription, 0, len(subs))
	for _, existing := range subs {
		if strings.EqualFold(existing.Email, email) && existing.Category == category {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) == len(subs) {
		return types.ErrNotSubscribed
	}
	return s.saveJSON(NotifyKey, kept)
}

// Subscriptions returns all notification signups in signup order.
func (s *Store) Subscriptions() []types.Subscription {
	var subs []types.Subscription
	if !s.loadJSON(NotifyKey, &subs) || subs == nil {
		return []types.Subscription{}
	}
	return subs
}
