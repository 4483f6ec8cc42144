package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "creator_studio/internal/api/auth/models"
	"creator_studio/internal/common"
)

func TestResolveEffectiveClientID_ClientDungClientCuaMinh(t *testing.T) {
	ownID := primitive.NewObjectID()

	clientID, scoped, err := ResolveEffectiveClientID(authmodels.RoleClient, ownID, "")
	require.NoError(t, err)

	assert.True(t, scoped)
	assert.Equal(t, ownID, clientID)
}

func TestResolveEffectiveClientID_ClientBoQuaImpersonate(t *testing.T) {
	ownID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	// Vai trò client không được impersonate, tham số bị bỏ qua
	clientID, scoped, err := ResolveEffectiveClientID(authmodels.RoleClient, ownID, otherID.Hex())
	require.NoError(t, err)

	assert.True(t, scoped)
	assert.Equal(t, ownID, clientID)
}

func TestResolveEffectiveClientID_ClientChuaGanKhachHang(t *testing.T) {
	_, _, err := ResolveEffectiveClientID(authmodels.RoleClient, primitive.NilObjectID, "")
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrTenantRequired)
}

func TestResolveEffectiveClientID_AdminImpersonate(t *testing.T) {
	target := primitive.NewObjectID()

	clientID, scoped, err := ResolveEffectiveClientID(authmodels.RoleAdmin, primitive.NilObjectID, target.Hex())
	require.NoError(t, err)

	assert.True(t, scoped)
	assert.Equal(t, target, clientID)
}

func TestResolveEffectiveClientID_AdminImpersonateHexLoi(t *testing.T) {
	_, _, err := ResolveEffectiveClientID(authmodels.RoleAdmin, primitive.NilObjectID, "khong-phai-objectid")
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestResolveEffectiveClientID_AdminKhongThamSo_PhamViToanHeThong(t *testing.T) {
	clientID, scoped, err := ResolveEffectiveClientID(authmodels.RoleAdmin, primitive.NilObjectID, "")
	require.NoError(t, err)

	assert.False(t, scoped)
	assert.True(t, clientID.IsZero())
}
