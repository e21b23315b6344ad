package handlers

import (
	"net/http"

	"coach-tree-portal/internal/models"
	"coach-tree-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler serves the coach tree view
type MemberHandler struct {
	treeService service.TreeServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(treeService service.TreeServiceInterface) *MemberHandler {
	return &MemberHandler{
		treeService: treeService,
	}
}

// MoveMemberRequest is the body of PUT /members/{id}/parent
type MoveMemberRequest struct {
	ParentID *int `json:"parentId" binding:"required" example:"1"`
}

// ListMembers returns all members ordered by id
// @Summary List members
// @Description Get the flat member list ordered by ascending id. Each member references its coach via parentId; 0 marks a top level member.
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {array} models.Member "Successfully retrieved members"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.treeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetTree returns the members nested under their coaches
// @Summary Get coach tree
// @Description Get the members as a tree. Members whose coach is missing become top level nodes.
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {array} service.TreeNode "Successfully retrieved tree"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /members/tree [get]
func (h *MemberHandler) GetTree(c *gin.Context) {
	roots, err := h.treeService.Tree(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roots)
}

// UpdateMember applies a partial update to a member
// @Summary Update member
// @Description Update a member's name, email or coach. A new name or email must pass the create form's name and email rules. A coach change is refused when it would create a cycle.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body models.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Member updated"
// @Failure 400 {object} ErrorResponse "Invalid member ID or body"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Move would create a cycle"
// @Failure 422 {object} ErrorResponse "Name or email rule failed"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /members/{id} [patch]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := parseMemberID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.treeService.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
}

// MoveMember re-parents a member under another coach
// @Summary Move member
// @Description Move a member under a new coach. parentId 0 moves the member to the top level.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param parent body MoveMemberRequest true "New coach"
// @Success 200 {object} map[string]interface{} "Member moved"
// @Failure 400 {object} ErrorResponse "Invalid member ID or body"
// @Failure 404 {object} ErrorResponse "Member or coach not found"
// @Failure 409 {object} ErrorResponse "Move would create a cycle"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /members/{id}/parent [put]
func (h *MemberHandler) MoveMember(c *gin.Context) {
	id, err := parseMemberID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req MoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.treeService.Move(c.Request.Context(), id, *req.ParentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member moved successfully"})
}

// DeleteMember removes a member without children
// @Summary Delete member
// @Description Delete a member. Members that still coach others cannot be deleted.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} map[string]interface{} "Member deleted"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member still has children"
// @Failure 502 {object} ErrorResponse "Members API request failed"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := parseMemberID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.treeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
