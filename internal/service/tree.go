package service

import (
	"context"
	"fmt"

	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/logger"
	"coach-tree-portal/internal/models"
)

// TreeNode is a member together with the members it coaches
type TreeNode struct {
	models.Member
	Children []*TreeNode `json:"children"`
}

// TreeService shapes the member list for the coach tree view and applies its edits
type TreeService struct {
	client    MembersClientInterface
	validator *MemberValidator
}

// NewTreeService creates a new tree service
func NewTreeService(client MembersClientInterface, validator *MemberValidator) *TreeService {
	return &TreeService{client: client, validator: validator}
}

// List returns the flat member list ordered by id
func (s *TreeService) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.client.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	return models.SortByID(members), nil
}

// Tree returns the members nested under their coaches
func (s *TreeService) Tree(ctx context.Context) ([]*TreeNode, error) {
	members, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(members), nil
}

// Move re-parents member id under parentID, refusing moves that would create a cycle
func (s *TreeService) Move(ctx context.Context, id, parentID int) error {
	return s.Update(ctx, id, models.UpdateMemberRequest{ParentID: &parentID})
}

// Update applies a partial update. A parent change is checked against the current tree first,
// and a new name or email has to pass the same name and email rules as the create form.
func (s *TreeService) Update(ctx context.Context, id int, req models.UpdateMemberRequest) error {
	if req.IsEmpty() {
		return apperrors.ErrEmptyUpdate
	}

	profileChange := req.FullName != nil || req.Email != nil
	if req.ParentID != nil || profileChange {
		members, err := s.List(ctx)
		if err != nil {
			return err
		}
		if req.ParentID != nil {
			if err := checkMove(members, id, *req.ParentID); err != nil {
				return err
			}
		}
		if profileChange {
			if err := s.checkProfile(members, id, &req); err != nil {
				return err
			}
		}
	}

	if err := s.client.UpdateOne(ctx, id, req); err != nil {
		return fmt.Errorf("failed to update member %d: %w", id, err)
	}

	logger.WithContext(ctx).WithField("member_id", id).Info("Member updated")
	return nil
}

// checkProfile validates the name and email the member would end up with and trims the
// changed ones in req
func (s *TreeService) checkProfile(members []models.Member, id int, req *models.UpdateMemberRequest) error {
	current, ok := models.FindByID(members, id)
	if !ok {
		return apperrors.ErrMemberNotFound
	}

	next := models.FormFields{Name: current.FullName, Email: current.Email}
	if req.FullName != nil {
		next.Name = *req.FullName
	}
	if req.Email != nil {
		next.Email = *req.Email
	}
	next = next.Normalized()

	if err := s.validator.ValidateProfile(id, next.Name, next.Email, members).Err(); err != nil {
		return err
	}

	if req.FullName != nil {
		req.FullName = &next.Name
	}
	if req.Email != nil {
		req.Email = &next.Email
	}
	return nil
}

// Delete removes a leaf member from the tree
func (s *TreeService) Delete(ctx context.Context, id int) error {
	members, err := s.List(ctx)
	if err != nil {
		return err
	}
	if _, ok := models.FindByID(members, id); !ok {
		return apperrors.ErrMemberNotFound
	}
	for _, m := range members {
		if m.ParentID == id && m.ID != id {
			return apperrors.ErrMemberHasChildren
		}
	}

	if err := s.client.DeleteOne(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member %d: %w", id, err)
	}

	logger.WithContext(ctx).WithField("member_id", id).Info("Member deleted")
	return nil
}

func checkMove(members []models.Member, id, parentID int) error {
	if _, ok := models.FindByID(members, id); !ok {
		return apperrors.ErrMemberNotFound
	}
	if parentID == models.RootParentID {
		return nil
	}
	if parentID == id {
		return apperrors.ErrTreeCycle
	}
	if _, ok := models.FindByID(members, parentID); !ok {
		return apperrors.NewNotFoundError("coach")
	}

	// Walk up from the new parent; meeting id means id would become its own ancestor.
	byID := indexByID(members)
	current := parentID
	for steps := 0; steps <= len(members); steps++ {
		m, ok := byID[current]
		if !ok || m.ParentID == models.RootParentID {
			return nil
		}
		if m.ParentID == id {
			return apperrors.ErrTreeCycle
		}
		current = m.ParentID
	}
	// The existing data already loops; refuse to make it worse.
	return apperrors.ErrTreeCycle
}

// BuildTree nests members under their parents. Members whose parent is the root sentinel or
// missing become roots, as do members sitting on a parent cycle. Siblings are ordered by id.
func BuildTree(members []models.Member) []*TreeNode {
	sorted := models.SortByID(members)
	byID := indexByID(sorted)

	nodes := make(map[int]*TreeNode, len(sorted))
	for _, m := range sorted {
		nodes[m.ID] = &TreeNode{Member: m, Children: []*TreeNode{}}
	}

	roots := []*TreeNode{}
	for _, m := range sorted {
		node := nodes[m.ID]
		parent, ok := nodes[m.ParentID]
		if m.IsRoot() || !ok || m.ParentID == m.ID || onCycle(byID, m.ID) {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// onCycle reports whether following parents from id leads back to id
func onCycle(byID map[int]models.Member, id int) bool {
	current := id
	for steps := 0; steps <= len(byID); steps++ {
		m, ok := byID[current]
		if !ok || m.IsRoot() {
			return false
		}
		if m.ParentID == id {
			return true
		}
		current = m.ParentID
	}
	return false
}

func indexByID(members []models.Member) map[int]models.Member {
	byID := make(map[int]models.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return byID
}
