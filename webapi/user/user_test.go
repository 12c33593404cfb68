package user_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	testutils.E2ETestSuite
	testUser *testutils.TestUser
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.testUser = s.CreateTestUser()
}

func (s *UserTestSuite) TestCreateUserVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"username":"newuser","email":"new@example.com","password":"password123"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "invalid body",
			body:       `{"username":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "short password",
			body:       `{"username":"other","email":"other@example.com","password":"123"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "duplicate username",
			body:       fmt.Sprintf(`{"username":%q,"email":"dup@example.com","password":"password123"}`, s.testUser.Username),
			wantStatus: fiber.StatusConflict,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/user", tc.body, "")
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestGetUserVariants() {
	testCases := []struct {
		userID     string
		desc       string
		wantStatus int
	}{
		{userID: uuid.New().String(), desc: "another user", wantStatus: fiber.StatusForbidden},
		{userID: "not-a-uuid", desc: "invalid id", wantStatus: fiber.StatusBadRequest},
		{userID: s.testUser.ID.String(), desc: "get user success", wantStatus: fiber.StatusOK},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodGet, "/user/"+tc.userID, "", s.testUser.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestMe() {
	resp := s.MakeRequest(http.MethodGet, "/user/me", "", s.testUser.Token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var me struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Password string    `json:"password"`
	}
	s.Decode(resp, &me)
	s.Equal(s.testUser.ID, me.ID)
	s.Equal(s.testUser.Username, me.Username)
	s.Empty(me.Password)

	resp = s.MakeRequest(http.MethodGet, "/user/me", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *UserTestSuite) TestUpdateUser() {
	path := "/user/" + s.testUser.ID.String()
	resp := s.MakeRequest(http.MethodPut, path, `{"names":"Ada Lovelace"}`, s.testUser.Token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Names string `json:"names"`
	}
	s.Decode(resp, &out)
	s.Equal("Ada Lovelace", out.Names)

	resp = s.MakeRequest(http.MethodPut, "/user/"+uuid.NewString(), `{"names":"x"}`, s.testUser.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *UserTestSuite) TestDeleteUser() {
	path := "/user/" + s.testUser.ID.String()

	resp := s.MakeRequest(http.MethodDelete, path, `{"password":"wrong-password"}`, s.testUser.Token)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodDelete, path, `{}`, s.testUser.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodDelete, path, fmt.Sprintf(`{"password":%q}`, testutils.TestPassword), s.testUser.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// the token still verifies but the user is gone
	resp = s.MakeRequest(http.MethodGet, "/user/me", "", s.testUser.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}
