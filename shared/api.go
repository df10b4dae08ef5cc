package shared

type ApiErrorType string

const (
	ApiErrorTypeValidation     ApiErrorType = "validation"
	ApiErrorTypeAuthentication ApiErrorType = "authentication"
	ApiErrorTypeAuthorization  ApiErrorType = "authorization"
	ApiErrorTypeConflict       ApiErrorType = "conflict"
	ApiErrorTypeOther          ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e ApiError) Error() string {
	return e.Msg
}
