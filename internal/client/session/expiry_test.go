package session

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator(t *testing.T) {
	n := NewNavigator("")
	assert.Equal(t, common.LoginPath, n.Path())
	assert.False(t, n.RedirectToLogin())

	n.Navigate("/profile")
	assert.True(t, n.RedirectToLogin())
	assert.Equal(t, common.LoginPath, n.Path())
	assert.Equal(t, 1, n.Redirects())

	for _, p := range []string{common.RegisterPath, common.ForgotPasswordPath, common.ResetPasswordPath} {
		n.Navigate(p)
		assert.False(t, n.RedirectToLogin(), p)
		assert.Equal(t, p, n.Path())
	}
	assert.Equal(t, 1, n.Redirects())
}

func TestExpiryHandler_TwoUnauthorizedRepliesRedirectOnce(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestStore(t)
	require.NoError(t, s.Save(ctx, "t1", &models.User{ID: 1}))

	nav := NewNavigator("/projects")
	h := NewExpiryHandler(s, nav, nil)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HandleUnauthorized(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, nav.Redirects())
	assert.Equal(t, common.LoginPath, nav.Path())
	assert.Empty(t, s.Token())
	assert.Nil(t, stored(t, repos.Metadata, common.TokenStorageKey))
	assert.Nil(t, stored(t, repos.Metadata, common.UserStorageKey))
}

func TestExpiryHandler_CancelledContext(t *testing.T) {
	s, repos := newTestStore(t)
	require.NoError(t, s.Save(context.Background(), "t1", &models.User{ID: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewExpiryHandler(s, NewNavigator(common.RegisterPath), nil).HandleUnauthorized(ctx)
	assert.Nil(t, stored(t, repos.Metadata, common.TokenStorageKey))
}
