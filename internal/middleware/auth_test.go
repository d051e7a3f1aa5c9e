package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"Token abc123":    "abc123",
		"token abc123":    "abc123",
		"Bearer  abc123 ": "abc123",
		"Basic abc123":    "",
		"abc123":          "",
		"":                "",
	}
	for header, want := range cases {
		require.Equal(t, want, tokenFromHeader(header), header)
	}
}

func TestAuthenticateAndRequire(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	adminToken := testhelpers.Login(t, db, "office")
	residentToken := testhelpers.Login(t, db, "asha")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(Authenticate(db))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		if user := CurrentUser(c); user != nil {
			return c.SendString(user.Username)
		}
		return c.SendString("anonymous")
	})
	app.Get("/admin", Require(policy.IsAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	get := func(path, token string) *http.Response {
		req := httptest.NewRequest("GET", path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := get("/whoami", "")
	testhelpers.AssertStatus(t, resp, http.StatusOK)

	resp = get("/whoami", "not-a-real-token")
	testhelpers.AssertStatus(t, resp, http.StatusTeapot)

	resp = get("/admin", adminToken)
	testhelpers.AssertStatus(t, resp, http.StatusNoContent)

	resp = get("/admin", residentToken)
	testhelpers.AssertStatus(t, resp, http.StatusTeapot)

	resp = get("/admin", "")
	testhelpers.AssertStatus(t, resp, http.StatusTeapot)
}

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, APIVersion, resp.Header.Get("X-Api-Version"))
}
