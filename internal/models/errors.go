package models

type ErrDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrDetails `json:"error"`
}

const (
	InvalidTokenErr        string = "INVALID_TOKEN"
	UpstreamUnavailableErr string = "UPSTREAM_UNAVAILABLE"
	SaveFailedErr          string = "SAVE_FAILED"
	NotFoundErr            string = "NOT_FOUND"
	InvalidJSONErr         string = "INVALID_JSON"
	InternalErr            string = "INTERNAL_ERROR"
)
