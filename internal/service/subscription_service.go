package service

import (
	"context"
	"fmt"

	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/policy"
	"github.com/newsroom-api/internal/repository"
	"github.com/rs/zerolog"
)

// subscriptionService is the concrete implementation of SubscriptionService
type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	publishers    repository.PublisherRepository
	users         repository.UserRepository
	log           zerolog.Logger
}

// newSubscriptionService creates a new SubscriptionService
func newSubscriptionService(repos *repository.Repositories, log zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptions: repos.Subscription,
		publishers:    repos.Publisher,
		users:         repos.User,
		log:           log.With().Str("service", "subscription").Logger(),
	}
}

// Get returns the reader's current subscriptions
func (s *subscriptionService) Get(ctx context.Context, actor *models.User) (*models.Subscriptions, error) {
	if !policy.CanManageSubscriptions(actor) {
		return nil, Forbidden("Readers only.")
	}
	return s.subscriptions.Get(ctx, actor.ID)
}

// Update replaces the reader's subscription sets
func (s *subscriptionService) Update(ctx context.Context, actor *models.User, subs *models.Subscriptions) (*models.Subscriptions, error) {
	if !policy.CanManageSubscriptions(actor) {
		return nil, Forbidden("Readers only.")
	}

	if len(subs.PublisherIDs) > 0 {
		count, err := s.publishers.CountExisting(ctx, subs.PublisherIDs)
		if err != nil {
			return nil, fmt.Errorf("check publishers: %w", err)
		}
		if count != len(subs.PublisherIDs) {
			return nil, FieldErrors{"publisher_ids": "one or more publishers do not exist"}
		}
	}
	if len(subs.JournalistIDs) > 0 {
		count, err := s.users.CountJournalists(ctx, subs.JournalistIDs)
		if err != nil {
			return nil, fmt.Errorf("check journalists: %w", err)
		}
		if count != len(subs.JournalistIDs) {
			return nil, FieldErrors{"journalist_ids": "one or more journalists do not exist"}
		}
	}

	if err := s.subscriptions.Replace(ctx, actor.ID, subs); err != nil {
		return nil, fmt.Errorf("replace subscriptions: %w", err)
	}

	s.log.Info().
		Str("user_id", actor.ID).
		Int("publishers", len(subs.PublisherIDs)).
		Int("journalists", len(subs.JournalistIDs)).
		Msg("Subscriptions updated")

	return s.subscriptions.Get(ctx, actor.ID)
}
