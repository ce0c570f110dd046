package instagram

const (
	// WebRoot is the base of every authenticated endpoint and the fixed Referer.
	WebRoot = "https://www.instagram.com/"
	// TokenRoot is the unauthenticated page tokens are grabbed from.
	TokenRoot = "https://instagram.com/"
)

const (
	loginPath    = "/accounts/login/ajax/"
	queryPath    = "/query/"
	likePath     = "/web/likes/%s/like/"
	commentPath  = "/web/comments/%s/add/"
	followPath   = "/web/friendships/%s/follow/"
	unfollowPath = "/web/friendships/%s/unfollow/"
)

const (
	cookieCSRF      = "csrftoken"
	cookieMid       = "mid"
	cookieSessionID = "sessionid"
)
