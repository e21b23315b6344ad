package testutils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"coach-tree-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// FakeMembersAPI is an in-memory stand-in for the external members REST API
type FakeMembersAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	members  []models.Member
	nextID   int
	failWith int
	calls    map[string]int
}

// NewFakeMembersAPI starts a fake members API seeded with members. Close it with Close.
func NewFakeMembersAPI(members ...models.Member) *FakeMembersAPI {
	gin.SetMode(gin.TestMode)
	api := &FakeMembersAPI{calls: make(map[string]int)}
	api.Seed(members...)

	router := gin.New()
	router.Use(api.countAndFail)
	router.GET("/members", api.list)
	router.POST("/members", api.create)
	router.PATCH("/members/:id", api.update)
	router.DELETE("/members/:id", api.delete)

	api.Server = httptest.NewServer(router)
	return api
}

// URL returns the base URL to configure the members client with
func (a *FakeMembersAPI) URL() string {
	return a.Server.URL
}

// Close shuts the server down
func (a *FakeMembersAPI) Close() {
	a.Server.Close()
}

// Seed replaces the stored members
func (a *FakeMembersAPI) Seed(members ...models.Member) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.members = append([]models.Member{}, members...)
	a.nextID = 1
	for _, m := range members {
		if m.ID >= a.nextID {
			a.nextID = m.ID + 1
		}
	}
}

// Members returns the stored members in insertion order
func (a *FakeMembersAPI) Members() []models.Member {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Member{}, a.members...)
}

// FailWith makes every following request answer with status. 0 restores normal behaviour.
func (a *FakeMembersAPI) FailWith(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failWith = status
}

// Calls returns how many requests hit "METHOD /path-pattern"
func (a *FakeMembersAPI) Calls(key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[key]
}

func (a *FakeMembersAPI) countAndFail(c *gin.Context) {
	a.mu.Lock()
	a.calls[c.Request.Method+" "+c.FullPath()]++
	status := a.failWith
	a.mu.Unlock()

	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

func (a *FakeMembersAPI) list(c *gin.Context) {
	c.JSON(http.StatusOK, a.Members())
}

func (a *FakeMembersAPI) create(c *gin.Context) {
	var req models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	id := a.nextID
	if req.ID != nil {
		id = *req.ID
	}
	if id >= a.nextID {
		a.nextID = id + 1
	}
	member := models.Member{ID: id, ParentID: req.ParentID, FullName: req.FullName, Email: req.Email}
	a.members = append(a.members, member)
	a.mu.Unlock()

	c.JSON(http.StatusCreated, member)
}

func (a *FakeMembersAPI) update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.members {
		if a.members[i].ID != id {
			continue
		}
		if req.ParentID != nil {
			a.members[i].ParentID = *req.ParentID
		}
		if req.FullName != nil {
			a.members[i].FullName = *req.FullName
		}
		if req.Email != nil {
			a.members[i].Email = *req.Email
		}
		c.JSON(http.StatusOK, a.members[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (a *FakeMembersAPI) delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.members {
		if a.members[i].ID == id {
			a.members = append(a.members[:i], a.members[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
