package dto

type ConsultationRequest struct {
	Query      string `json:"query" validate:"required,max=5000"`
	Mode       string `json:"mode" validate:"omitempty,oneof=text voice visual"`
	VisualData string `json:"visualData"`
}

type ConsultationResponse struct {
	Response   string   `json:"response"`
	Citations  []string `json:"citations"`
	Disclaimer string   `json:"disclaimer"`
	IsPremium  bool     `json:"isPremium"`
}

// ConsultationFailure is the body sent with 500 and 503 answers.
type ConsultationFailure struct {
	Response   string   `json:"response"`
	Citations  []string `json:"citations"`
	Disclaimer string   `json:"disclaimer"`
}
