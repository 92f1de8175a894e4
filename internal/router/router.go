package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	GetSessionByQuery(c *ginext.Context)
	UpdateSession(c *ginext.Context)
	SubmitPreferences(c *ginext.Context)
	DeclineOptions(c *ginext.Context)
	SelectOption(c *ginext.Context)
	ConfirmSession(c *ginext.Context)
	SessionAction(c *ginext.Context)
	MeetupAction(c *ginext.Context)
	ListMeetups(c *ginext.Context)
	ConfirmInvite(c *ginext.Context)
	DeclineInvite(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter builds the route table. auth guards everything under /api.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Two-party sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.PATCH("/sessions/:id", h.UpdateSession)
		api.POST("/sessions/:id/preferences", h.SubmitPreferences)
		api.POST("/sessions/:id/decline", h.DeclineOptions)
		api.POST("/sessions/:id/select", h.SelectOption)
		api.POST("/sessions/:id/confirm", h.ConfirmSession)

		api.POST("/session", h.SessionAction)
		api.GET("/session", h.GetSessionByQuery)

		// Meetups
		api.POST("/meetups", h.MeetupAction)
		api.GET("/meetups", h.ListMeetups)
		api.POST("/meetups/participants/:id/confirm", h.ConfirmInvite)
		api.POST("/meetups/participants/:id/decline", h.DeclineInvite)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
