package pkg

// AppError is an error that knows how it should be rendered over HTTP.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the failure envelope returned by every API route.
// swagger:model
type HTTPError struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Consultation request not found"`
	Error   string `json:"error,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainError keeps the cause; its text is exposed in the response.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Success: false, Message: e.Message}
	if e.Err != nil {
		out.Error = e.Err.Error()
	}
	return out
}
