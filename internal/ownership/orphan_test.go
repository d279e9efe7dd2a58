package ownership_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/mocks"
	"github.com/feral-file/ff-marketplace/internal/ownership"
	"github.com/feral-file/ff-marketplace/internal/store/schema"
)

func TestOrphanReconcile_ReassociatesThenNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reconciler := ownership.NewOrphanReconciler(st)

	gomock.InOrder(
		st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{ID: userID}, nil),
		st.EXPECT().UpdateProfileWallet(gomock.Any(), userID, buyer, nil).Return(int64(1), nil),
		st.EXPECT().ReassociateOrphans(gomock.Any(), userID, buyer).Return(int64(3), nil),
		st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{ID: userID, WalletAddress: strPtr(buyer)}, nil),
		st.EXPECT().ReassociateOrphans(gomock.Any(), userID, buyer).Return(int64(0), nil),
	)

	first, err := reconciler.Reconcile(context.Background(), userID, buyer)
	require.NoError(t, err)
	assert.True(t, first.UpdatedWallet)
	assert.Equal(t, int64(3), first.Reassociated)

	second, err := reconciler.Reconcile(context.Background(), userID, buyer)
	require.NoError(t, err)
	assert.False(t, second.UpdatedWallet)
	assert.Equal(t, int64(0), second.Reassociated)
}

func TestOrphanReconcile_ProfileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(nil, nil).Times(1)
	st.EXPECT().ReassociateOrphans(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := ownership.NewOrphanReconciler(st).Reconcile(context.Background(), userID, buyer)

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindProfileNotFound, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestOrphanReconcile_ProfileLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(nil, errors.New("db down")).Times(1)

	_, err := ownership.NewOrphanReconciler(st).Reconcile(context.Background(), userID, buyer)

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindPersistence, domain.KindOf(err))
}

func TestOrphanReconcile_BestEffortFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetUserProfile(gomock.Any(), userID).Return(&schema.UserProfile{ID: userID, WalletAddress: strPtr("0xold")}, nil).Times(1)
	st.EXPECT().UpdateProfileWallet(gomock.Any(), userID, buyer, nil).Return(int64(0), errors.New("update failed")).Times(1)
	st.EXPECT().ReassociateOrphans(gomock.Any(), userID, buyer).Return(int64(0), errors.New("update failed")).Times(1)

	result, err := ownership.NewOrphanReconciler(st).Reconcile(context.Background(), userID, buyer)

	require.NoError(t, err)
	assert.True(t, result.UpdatedWallet)
	assert.Equal(t, int64(0), result.Reassociated)
}
