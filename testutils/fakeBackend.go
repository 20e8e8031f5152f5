package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/entities"
)

const sessionCookie = "session"

// FakeBackend is an in-memory activities backend served over HTTP
type FakeBackend struct {
	*httptest.Server
	mu         sync.Mutex
	activities entities.Activities
	users      map[string]string
}

// NewFakeBackend starts a backend serving the given activities.
// users maps usernames to passwords accepted by /login.
func NewFakeBackend(activities entities.Activities, users map[string]string) *FakeBackend {
	gin.SetMode(gin.TestMode)

	b := &FakeBackend{
		activities: copyActivities(activities),
		users:      users,
	}

	engine := gin.New()
	engine.UseRawPath = true
	engine.GET("/current-user", b.currentUser)
	engine.POST("/login", b.login)
	engine.POST("/logout", b.logout)
	engine.GET("/activities", b.getActivities)
	engine.POST("/activities/:name/signup", b.signUp)
	engine.DELETE("/activities/:name/unregister", b.unregister)

	b.Server = httptest.NewServer(engine)
	return b
}

// Activities returns a copy of the backend's current activities
func (b *FakeBackend) Activities() entities.Activities {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyActivities(b.activities)
}

func (b *FakeBackend) currentUser(ctx *gin.Context) {
	user, err := ctx.Cookie(sessionCookie)
	if _, known := b.users[user]; err != nil || !known {
		ctx.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (b *FakeBackend) login(ctx *gin.Context) {
	username := ctx.Query("username")
	password, known := b.users[username]
	if !known || password != ctx.Query("password") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	ctx.SetCookie(sessionCookie, username, 3600, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"username": username, "message": fmt.Sprintf("Welcome, %s!", username)})
}

func (b *FakeBackend) logout(ctx *gin.Context) {
	ctx.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (b *FakeBackend) getActivities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, b.Activities())
}

func (b *FakeBackend) signUp(ctx *gin.Context) {
	name, email := ctx.Param("name"), ctx.Query("email")

	b.mu.Lock()
	defer b.mu.Unlock()

	pos, found := b.find(name)
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "Activity not found"})
		return
	}
	activity := &b.activities[pos]
	if contains(activity.Participants, email) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Student is already signed up"})
		return
	}
	if activity.SpotsLeft() <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Activity is full"})
		return
	}

	activity.Participants = append(activity.Participants, email)
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Signed up %s for %s", email, name)})
}

func (b *FakeBackend) unregister(ctx *gin.Context) {
	name, email := ctx.Param("name"), ctx.Query("email")

	b.mu.Lock()
	defer b.mu.Unlock()

	pos, found := b.find(name)
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "Activity not found"})
		return
	}
	activity := &b.activities[pos]
	if !contains(activity.Participants, email) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Student is not signed up for this activity"})
		return
	}

	remaining := make([]string, 0, len(activity.Participants))
	for _, participant := range activity.Participants {
		if participant != email {
			remaining = append(remaining, participant)
		}
	}
	activity.Participants = remaining
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Unregistered %s from %s", email, name)})
}

func (b *FakeBackend) find(name string) (int, bool) {
	for i, activity := range b.activities {
		if activity.Name == name {
			return i, true
		}
	}
	return 0, false
}

func contains(emails []string, email string) bool {
	for _, e := range emails {
		if e == email {
			return true
		}
	}
	return false
}

func copyActivities(activities entities.Activities) entities.Activities {
	copied := make(entities.Activities, len(activities))
	for i, activity := range activities {
		activity.Participants = append([]string{}, activity.Participants...)
		copied[i] = activity
	}
	return copied
}
