package peachdomain

// ErrorResponse é o corpo de erro da API administrativa da Peach AI
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e ErrorResponse) Text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
