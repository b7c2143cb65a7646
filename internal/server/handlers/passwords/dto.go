package passwords

import "time"

type ApproveRequest struct {
	Email      string `json:"email"      validate:"required,max=254"`
	ApprovedBy string `json:"approvedBy" validate:"required,max=254"`
}

type RejectRequest struct {
	Email      string `json:"email"      validate:"required,max=254"`
	RejectedBy string `json:"rejectedBy" validate:"required,max=254"`
}

type RevokeRequest struct {
	Email     string `json:"email"     validate:"required,max=254"`
	RevokedBy string `json:"revokedBy" validate:"required,max=254"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PasswordResponse struct {
	Email         string     `json:"email"`
	PlainPassword string     `json:"plainPassword"`
	GeneratedAt   time.Time  `json:"generatedAt"`
	Approved      bool       `json:"approved"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
}

type ListResponse struct {
	Success   bool               `json:"success"`
	Passwords []PasswordResponse `json:"passwords"`
}
