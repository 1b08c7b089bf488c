package service

import "errors"

var (
	// ErrBillingNotConfigured means the user has no billing settings row.
	ErrBillingNotConfigured = errors.New("billing settings not configured")

	// ErrBillingInactive means reminders are switched off for the user.
	ErrBillingInactive = errors.New("billing settings inactive")

	// ErrNoLiveInstance means an inbound provider event arrived for a user
	// with no registered instance.
	ErrNoLiveInstance = errors.New("no live provider instance for user")

	// ErrCampaignNotRunnable means the campaign is already past scheduled.
	ErrCampaignNotRunnable = errors.New("campaign is not in scheduled state")

	// ErrCampaignMissingContent means neither a template nor literal message
	// content is set.
	ErrCampaignMissingContent = errors.New("campaign has no template or message content")
)
