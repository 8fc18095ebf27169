// Package notify implements the approval notification pipeline: resolving
// the subscriber set, composing the message, dispatching one batched email
// and making a best-effort social post. It is invoked exactly once per
// Draft->Published transition, by the workflow layer, after the approval has
// been committed.
package notify

import (
	"context"
	"fmt"

	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/repository"
	"github.com/rs/zerolog"
)

// Notifier fans an approval out to subscribers
type Notifier struct {
	subs   repository.SubscriptionRepository
	mailer Mailer
	social SocialPoster
	site   *config.SiteConfig
	from   string
	log    zerolog.Logger
}

// New creates a Notifier
func New(subs repository.SubscriptionRepository, mailer Mailer, social SocialPoster,
	site *config.SiteConfig, from string, log zerolog.Logger) *Notifier {
	return &Notifier{
		subs:   subs,
		mailer: mailer,
		social: social,
		site:   site,
		from:   from,
		log:    log.With().Str("component", "notifier").Logger(),
	}
}

// ArticleApproved notifies subscribers of a newly published article. A mail
// transport failure is returned to the caller: the approval is already
// committed and email is a commitment made, so it fails loudly. The social
// post result is inspected, logged and discarded; it can never fail the
// pipeline.
func (n *Notifier) ArticleApproved(ctx context.Context, article *models.Article) error {
	link := n.site.ArticleURL(article.ID)
	scope := article.Scope()

	subject := "New Article: " + article.Title
	body := fmt.Sprintf(
		"Title: %s\nAuthor: %s\nPublisher: %s\n\nExcerpt:\n%s\n\nRead more: %s\n",
		article.Title, article.Author.Username, scope,
		Excerpt(article.Content), link,
	)

	recipients, err := n.subs.SubscriberEmails(ctx, article.AuthorID, article.PublisherID)
	if err != nil {
		return fmt.Errorf("resolve subscribers: %w", err)
	}

	if len(recipients) > 0 {
		if err := n.mailer.Send(subject, body, n.from, recipients); err != nil {
			return fmt.Errorf("send approval mail: %w", err)
		}
		n.log.Info().
			Str("article_id", article.ID).
			Int("recipients", len(recipients)).
			Msg("Approval mail sent")
	} else {
		n.log.Info().Str("article_id", article.ID).Msg("No subscribers to notify")
	}

	text := fmt.Sprintf("NEW: %s — %s (%s) %s", article.Title, article.Author.Username, scope, link)
	posted, err := n.social.Post(ctx, text)
	if err != nil {
		n.log.Warn().Err(err).Str("article_id", article.ID).Msg("Social post failed")
	} else if posted {
		n.log.Info().Str("article_id", article.ID).Msg("Social post published")
	}

	return nil
}
