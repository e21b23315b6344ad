package service

import (
	"context"

	"coach-tree-portal/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MembersClientInterface defines the operations available on the external members API
type MembersClientInterface interface {
	FetchAll(ctx context.Context) ([]models.Member, error)
	CreateOne(ctx context.Context, payload models.CreateMemberRequest) error
	DeleteOne(ctx context.Context, id int) error
	UpdateOne(ctx context.Context, id int, payload models.UpdateMemberRequest) error
}

// FormControllerInterface defines the interface for the create-member form controller
type FormControllerInterface interface {
	Load(ctx context.Context) error
	Snapshot() FormSnapshot
	SubmitFields(ctx context.Context, fields models.FormFields) (*SubmitResult, error)
	ValidateFields(fields models.FormFields) *ValidationResult
}

// TreeServiceInterface defines the interface for the coach tree service
type TreeServiceInterface interface {
	List(ctx context.Context) ([]models.Member, error)
	Tree(ctx context.Context) ([]*TreeNode, error)
	Move(ctx context.Context, id, parentID int) error
	Update(ctx context.Context, id int, req models.UpdateMemberRequest) error
	Delete(ctx context.Context, id int) error
}
