package notifications

import (
	"context"
	"fmt"

	"referral-server/internal/clients/identity"
	"referral-server/internal/clients/mail"
	"referral-server/internal/observability"

	"github.com/google/uuid"
)

// Notifier sends best-effort email notifications for referral lifecycle
// events. Every method swallows errors after logging them; a notification
// failure must never fail the transition that triggered it.
type Notifier struct {
	identity *identity.Client
	mail     *mail.ResendClient
	from     string
	logger   *observability.Logger
}

func New(identityClient *identity.Client, mailClient *mail.ResendClient, from string, logger *observability.Logger) *Notifier {
	return &Notifier{
		identity: identityClient,
		mail:     mailClient,
		from:     from,
		logger:   logger,
	}
}

// ReferralCreated tells both parties a referral has been registered.
func (n *Notifier) ReferralCreated(ctx context.Context, referrerID, refereeID uuid.UUID, codeUsed string) {
	for _, recipient := range []uuid.UUID{referrerID, refereeID} {
		user, err := n.identity.GetUserDetails(ctx, recipient)
		if err != nil {
			n.logger.WarnWithError(ctx, "skipping referral created email, user lookup failed", err)
			continue
		}

		subject := "Referral registered"
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>A referral using code %s has been registered. "+
				"The reward unlocks once the referred user completes their first activity.</p>",
			user.FirstName, codeUsed)

		if _, err := n.mail.SendEmail(ctx, n.from, user.Email, subject, body); err != nil {
			n.logger.WarnWithError(ctx, "failed to send referral created email", err)
		}
	}
}

// ReferralCompleted tells the referrer their referral converted and a
// reward is pending.
func (n *Notifier) ReferralCompleted(ctx context.Context, referrerID uuid.UUID, amount float64, currency string) {
	user, err := n.identity.GetUserDetails(ctx, referrerID)
	if err != nil {
		n.logger.WarnWithError(ctx, "skipping referral completion email, user lookup failed", err)
		return
	}

	subject := "Your referral just came through!"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Someone you referred just completed their first activity. "+
			"A reward of %.2f %s is pending on your account.</p>",
		user.FirstName, amount, currency)

	if _, err := n.mail.SendEmail(ctx, n.from, user.Email, subject, body); err != nil {
		n.logger.WarnWithError(ctx, "failed to send referral completion email", err)
	}
}

// RewardCredited tells the recipient a reward has been credited.
func (n *Notifier) RewardCredited(ctx context.Context, recipientID uuid.UUID, amount float64, currency string) {
	user, err := n.identity.GetUserDetails(ctx, recipientID)
	if err != nil {
		n.logger.WarnWithError(ctx, "skipping reward credited email, user lookup failed", err)
		return
	}

	subject := "Your reward has been credited"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A reward of %.2f %s has been credited to your account.</p>",
		user.FirstName, amount, currency)

	if _, err := n.mail.SendEmail(ctx, n.from, user.Email, subject, body); err != nil {
		n.logger.WarnWithError(ctx, "failed to send reward credited email", err)
	}
}

// MilestoneReached congratulates a referrer on hitting a completed
// referral milestone.
func (n *Notifier) MilestoneReached(ctx context.Context, referrerID uuid.UUID, milestone int, amount float64, currency string) {
	user, err := n.identity.GetUserDetails(ctx, referrerID)
	if err != nil {
		n.logger.WarnWithError(ctx, "skipping milestone email, user lookup failed", err)
		return
	}

	subject := fmt.Sprintf("Milestone reached: %d completed referrals", milestone)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have reached %d completed referrals. "+
			"A bonus of %.2f %s is pending on your account.</p>",
		user.FirstName, milestone, amount, currency)

	if _, err := n.mail.SendEmail(ctx, n.from, user.Email, subject, body); err != nil {
		n.logger.WarnWithError(ctx, "failed to send milestone email", err)
	}
}
