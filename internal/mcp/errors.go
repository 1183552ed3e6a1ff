package mcp

// ErrorPayload is the uniform error shape returned as tool output. Callers
// receive it as structured content, never as a protocol-level fault.
type ErrorPayload struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// failure maps any error to the tool error payload.
func failure(err error) ErrorPayload {
	return ErrorPayload{Error: err.Error(), Status: "failed"}
}
