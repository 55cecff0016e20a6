// Package constants contains values shared between delivery, usecase and infra layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// OAuth providers stored in oauth_tokens.provider
const (
	ProviderGoogle  = "google"
	ProviderYouTube = "youtube"
)

const (
	// JobSourceGMBSync is the jobs_log.source value written by the sync engine.
	JobSourceGMBSync = "gmb-sync"

	// HeaderInternalRun carries the shared secret for scheduler-initiated calls.
	HeaderInternalRun = "X-Internal-Run"
)

// Google OAuth scopes requested when connecting a Business Profile account.
const (
	ScopeBusinessManage = "https://www.googleapis.com/auth/business.manage"
	ScopeUserInfoEmail  = "https://www.googleapis.com/auth/userinfo.email"
	ScopeUserProfile    = "https://www.googleapis.com/auth/userinfo.profile"
)
