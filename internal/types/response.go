package types

// Response is the success envelope returned by every handler.
type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// NewResponse builds a success envelope with the given payload and message.
func NewResponse(status int, data interface{}, message string) Response {
	return Response{
		Status:  status,
		Data:    data,
		Message: message,
	}
}
