package response

const (
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

	DefaultErrorMessage = "Something went wrong"

	// CodeTooManyRequests is a transport-level code and never produced by use cases.
	CodeTooManyRequests = "TooManyRequests"
)
