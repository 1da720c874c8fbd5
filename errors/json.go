package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error.
// The wrapped cause chain is excluded.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Standard errors become CodeUnknown with their Error() text as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		return &ErrorResponse{
			Code:           string(platformErr.Code()),
			Message:        platformErr.Message(),
			Classification: string(platformErr.Classification()),
			Context:        platformErr.Context(),
		}
	}

	return &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

// MarshalJSON implements json.Marshaler using the ErrorResponse shape.
func (e *platformError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}
