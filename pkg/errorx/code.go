package errorx

type Code int

const (
	// Configuration codes
	NoCredentials      Code = 100001
	NoWriteCredentials Code = 100002

	// Upstream API codes
	Unauthorized    Code = 200001
	NotFound        Code = 200002
	TooManyRequests Code = 200003
	BadResponse     Code = 200004
	Transport       Code = 200005

	// Client-side validation codes
	ReplyTooLong Code = 300001
)
