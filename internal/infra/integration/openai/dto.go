package openai

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message message `json:"message"`
}

// scoreResult is the strict-JSON object the prompt asks the model for. Score
// is a pointer so a missing key is distinguishable from a literal zero.
type scoreResult struct {
	Score     *int   `json:"score"`
	Reasoning string `json:"reasoning"`
}
