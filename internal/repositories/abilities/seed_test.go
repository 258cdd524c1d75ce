package abilities_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
	"github.com/KirkDiggler/aoe-targeting/internal/repositories/abilities"
	mockabilities "github.com/KirkDiggler/aoe-targeting/internal/repositories/abilities/mock"
	"github.com/KirkDiggler/aoe-targeting/internal/testutils"
)

func testFile() *domain.File {
	return &domain.File{Abilities: []domain.Definition{
		*testutils.CreateTestSprayDefinition("acid_spray"),
		*testutils.CreateTestConeDefinition("fire_breath"),
	}}
}

func TestSeed_CreatesAndReplaces(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockabilities.NewMockRepository(ctrl)
	file := testFile()

	gomock.InOrder(
		repo.EXPECT().Create(ctx, &file.Abilities[0]).Return(nil),
		repo.EXPECT().Create(ctx, &file.Abilities[1]).Return(tgterr.AlreadyExistsf("exists")),
		repo.EXPECT().Update(ctx, &file.Abilities[1]).Return(nil),
	)

	n, err := abilities.Seed(ctx, repo, file)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSeed_StopsOnError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockabilities.NewMockRepository(ctrl)
	file := testFile()
	boom := errors.New("boom")

	repo.EXPECT().Create(ctx, &file.Abilities[0]).Return(boom)

	n, err := abilities.Seed(ctx, repo, file)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, n)
}

func TestSeed_InMemory(t *testing.T) {
	ctx := context.Background()
	repo := abilities.NewInMemoryRepository()

	_, err := abilities.Seed(ctx, repo, testFile())
	require.NoError(t, err)
	_, err = abilities.Seed(ctx, repo, testFile())
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := abilities.Seed(ctx, repo, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
