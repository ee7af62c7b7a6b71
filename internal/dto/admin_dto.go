package dto

type ApproveDeletionRequest struct {
	Type string `json:"type" validate:"required,oneof=user lawyer"`
}

type DeletionRequestsResponse struct {
	Users   []UserProfileResponse   `json:"users"`
	Lawyers []LawyerProfileResponse `json:"lawyers"`
}

type LogListResponse struct {
	Logs   interface{} `json:"logs"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
