package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ReturnsFullCatalog(t *testing.T) {
	repo := NewMemoryRepository()

	list := repo.List()
	require.Len(t, list, 7)
	assert.Equal(t, "iphone-17", list[0].ID)
	assert.Equal(t, "iphone-14", list[6].ID)
}

func TestGet_Found(t *testing.T) {
	repo := NewMemoryRepository()

	p, err := repo.Get("iphone-17")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 17", p.DisplayName)
	assert.Equal(t, int64(6799), p.BasePrice)
	assert.Equal(t, 40, p.MaxInstallments)
}

func TestGet_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get("iphone-3310")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()

	p1, err := repo.Get("iphone-17")
	require.NoError(t, err)
	p1.BasePrice = 1

	p2, err := repo.Get("iphone-17")
	require.NoError(t, err)
	assert.Equal(t, int64(6799), p2.BasePrice)
}

func TestColor_StockFlags(t *testing.T) {
	repo := NewMemoryRepository()

	p, err := repo.Get("iphone-17-pro")
	require.NoError(t, err)

	c, ok := p.Color("Prateado")
	require.True(t, ok)
	assert.True(t, c.InStock)

	c, ok = p.Color("Preto")
	require.True(t, ok)
	assert.False(t, c.InStock)

	_, ok = p.Color("Rosa Choque")
	assert.False(t, ok)
}
