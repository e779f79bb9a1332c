package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	tests := []struct {
		name    string
		user    *models.User
		wantErr bool
	}{
		{
			name: "success",
			user: &models.User{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "hashedpassword",
				Role:     models.RoleStudent,
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &models.User{
				Name:     "Ana Again",
				Email:    "ana@example.com",
				Password: "hashedpassword",
				Role:     models.RoleStudent,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{
		Name:     "Find Me",
		Email:    "find@example.com",
		Password: "hashedpassword",
		Role:     models.RoleStudent,
	}))

	user, err := repo.FindByEmail("find@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Find Me", user.Name)

	_, err = repo.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindStudents(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	now := time.Now()
	fixtures := []*models.User{
		{Name: "Older Student", Email: "old@example.com", Password: "x", Role: models.RoleStudent, CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin, CreatedAt: now.Add(-1 * time.Hour)},
		{Name: "Newer Student", Email: "new@example.com", Password: "x", Role: models.RoleStudent, CreatedAt: now},
	}
	for _, u := range fixtures {
		require.NoError(t, repo.Create(u))
	}

	students, err := repo.FindStudents()
	require.NoError(t, err)
	require.Len(t, students, 2)

	// Admins excluded, newest first
	assert.Equal(t, "Newer Student", students[0].Name)
	assert.Equal(t, "Older Student", students[1].Name)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &models.User{Name: "Suspend Me", Email: "s@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, repo.Create(user))
	require.False(t, user.IsSuspended)

	user.IsSuspended = true
	require.NoError(t, repo.Update(user))

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsSuspended)
}
