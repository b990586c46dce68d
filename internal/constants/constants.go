package constants

// Session
const (
	SessionCookieName = "showcase_session"
	ContextKeyUserID  = "user_id"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Limits
const (
	MaxCommentLength = 2000
	MaxUploadBytes   = 100 << 20 // 100 MiB
)
