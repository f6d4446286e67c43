package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageRoute describes one page of the client application. The table is
// static: no guards, no nesting, no runtime registration. Props marks
// routes whose path parameters are handed to the page component.
type PageRoute struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Component string `json:"component"`
	Props     bool   `json:"props,omitempty"`
}

// pageRoutes is the ordered page table of the board, matched top to bottom.
var pageRoutes = []PageRoute{
	{Path: "/", Name: "home", Component: "HomeView"},
	{Path: "/login", Name: "login", Component: "LoginView"},
	{Path: "/register", Name: "register", Component: "RegisterView"},
	{Path: "/post", Name: "post", Component: "PostView"},
	{Path: "/student", Name: "student", Component: "StudentView"},
	{Path: "/alert", Name: "alert", Component: "AlertView"},
	{Path: "/profile", Name: "profile", Component: "ProfileView"},
	{Path: "/application/:jobID", Name: "application", Component: "ApplicationView", Props: true},
	{Path: "/review", Name: "review", Component: "ReviewView"},
	{Path: "/notification", Name: "notification", Component: "NotificationView"},
	{Path: "/notificationmanager", Name: "notificationmanager", Component: "NotificationManagerView"},
	{Path: "/apply", Name: "apply", Component: "ApplyView"},
	{Path: "/formdialog", Name: "formdialog", Component: "FormDialogView"},
}

// registerPageRoutes serves the page table and a resolver endpoint for each
// page path, so clients can ask which page a path maps to.
func registerPageRoutes(e *echo.Echo) {
	e.GET("/pages", func(c echo.Context) error {
		return c.JSON(http.StatusOK, pageRoutes)
	})

	for _, route := range pageRoutes {
		route := route
		e.GET("/pages"+route.Path, func(c echo.Context) error {
			resolved := route
			if route.Props {
				resolved.Path = c.Request().URL.Path[len("/pages"):]
			}
			return c.JSON(http.StatusOK, resolved)
		})
	}
}
