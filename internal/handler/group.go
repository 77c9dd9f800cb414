package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripledger/internal/middleware"
	"tripledger/internal/models"
	"tripledger/internal/service"
)

// GroupHandler serves group and membership management.
type GroupHandler struct {
	svc *service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

type createGroupRequest struct {
	Name      string   `json:"name" binding:"required"`
	MemberIDs []string `json:"memberIds"`
}

type addMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type groupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"createdBy"`
	MemberIDs []string `json:"memberIds"`
}

func toGroupResponse(group *models.Group) groupResponse {
	return groupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatedBy: group.CreatedBy,
		MemberIDs: group.MemberIDs,
	}
}

// Create creates a new group with the caller as a member.
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.svc.CreateGroup(c.Request.Context(), middleware.GetUserID(c), req.Name, req.MemberIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": toGroupResponse(group)})
}

// List returns every group the caller belongs to.
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.svc.ListGroups(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]groupResponse, len(groups))
	for i, group := range groups {
		out[i] = toGroupResponse(group)
	}
	c.JSON(http.StatusOK, gin.H{"groups": out})
}

// Get returns one group with its member records.
func (h *GroupHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	groupID := c.Param("id")

	group, err := h.svc.GetGroup(c.Request.Context(), userID, groupID)
	if err != nil {
		writeError(c, err)
		return
	}
	members, err := h.svc.Members(c.Request.Context(), userID, groupID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]userResponse, len(members))
	for i, member := range members {
		out[i] = toUserResponse(member)
	}
	c.JSON(http.StatusOK, gin.H{"group": toGroupResponse(group), "members": out})
}

// AddMember adds an existing user to the group.
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.svc.AddMember(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": toGroupResponse(group)})
}

// RemoveMember removes a user from the group.
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	err := h.svc.RemoveMember(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), c.Param("memberId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
