package dto

type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatRequest struct {
	History  []ChatTurn `json:"history"`
	Message  string     `json:"message"`
	Language string     `json:"language"`
}

type ChatResponse struct {
	Text string `json:"text"`
}
