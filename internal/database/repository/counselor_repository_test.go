package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

func TestCounselorRepository_FindAll_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCounselorRepository(db)

	for _, c := range []*models.Counselor{
		{Name: "Dr. Susan Smith", Specialty: "Mindfulness", Bio: "bio"},
		{Name: "Dr. Jane Doe", Specialty: "Anxiety", Bio: "bio", IsDefault: true},
		{Name: "Dr. Richard Roe", Specialty: "Depression", Bio: "bio"},
	} {
		require.NoError(t, repo.Create(c))
	}

	counselors, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, counselors, 3)

	assert.Equal(t, "Dr. Jane Doe", counselors[0].Name)
	assert.Equal(t, "Dr. Richard Roe", counselors[1].Name)
	assert.Equal(t, "Dr. Susan Smith", counselors[2].Name)
}

func TestCounselorRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCounselorRepository(db)

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, repository.ErrCounselorNotFound)
}

func TestCounselorRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCounselorRepository(db)

	c := &models.Counselor{Name: "Dr. Temp", Specialty: "Stress", Bio: "bio"}
	require.NoError(t, repo.Create(c))
	require.NoError(t, repo.Delete(c.ID))

	_, err := repo.FindByID(c.ID)
	assert.ErrorIs(t, err, repository.ErrCounselorNotFound)
}
