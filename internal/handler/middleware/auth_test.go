//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/handler/middleware"
	"reservation-engine/internal/pkg/jwt"
	"reservation-engine/tests/common/httptest"
	usecasemock "reservation-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(validator *usecasemock.MockTokenValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(validator)
	router.GET("/whoami", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	actorID := uuid.New()

	testCases := []struct {
		name       string
		token      string
		minRole    user.Role
		setupMock  func(*usecasemock.MockTokenValidator)
		expectCode int
		expectMsg  string
	}{
		{
			name:    "success: viewer on a viewer route",
			token:   "valid",
			minRole: user.RoleViewer,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("valid").Return(user.NewActor(actorID, user.RoleViewer), nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:    "success: admin passes an operator route",
			token:   "valid",
			minRole: user.RoleOperator,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("valid").Return(user.NewActor(actorID, user.RoleAdmin), nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "error: missing token",
			minRole:    user.RoleViewer,
			setupMock:  func(m *usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Access token required",
		},
		{
			name:    "error: invalid token",
			token:   "expired",
			minRole: user.RoleViewer,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("expired").Return(user.Actor{}, jwt.ErrInvalidToken)
			},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{
			name:    "error: viewer on an admin route",
			token:   "valid",
			minRole: user.RoleAdmin,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("valid").Return(user.NewActor(actorID, user.RoleViewer), nil)
			},
			expectCode: http.StatusForbidden,
			expectMsg:  "Insufficient permissions",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			rec := httptest.PerformRequest(t, newAuthRouter(validator, tc.minRole), http.MethodGet, "/whoami", nil, tc.token)

			if tc.expectCode == http.StatusOK {
				var body map[string]string
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.Equal(t, actorID.String(), body["id"])
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}
}
