package collection

import (
	"testing"

	"waifulist/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ChooseSortToggles(t *testing.T) {
	v := NewView(reconcile.User{ID: "p"}, nil)
	assert.Equal(t, reconcile.Sort{Key: reconcile.SortDate}, v.Sort())

	v.ChooseSort(reconcile.SortDate)
	assert.Equal(t, reconcile.Sort{Key: reconcile.SortDate, Reversed: true}, v.Sort())

	v.ChooseSort(reconcile.SortName)
	assert.Equal(t, reconcile.Sort{Key: reconcile.SortName}, v.Sort())

	v.ChooseSort(reconcile.SortName)
	v.ChooseSort(reconcile.SortName)
	assert.Equal(t, reconcile.Sort{Key: reconcile.SortName}, v.Sort())
}

func TestView_Compare(t *testing.T) {
	v := NewView(reconcile.User{ID: "p"}, nil)

	assert.False(t, v.AddCompare(reconcile.User{ID: "p"}), "primary cannot be a compare user")
	assert.True(t, v.AddCompare(reconcile.User{ID: "a"}))
	assert.True(t, v.AddCompare(reconcile.User{ID: "b"}))
	assert.False(t, v.AddCompare(reconcile.User{ID: "a"}))
	require.Len(t, v.Compare(), 2)

	assert.True(t, v.RemoveCompare("a"))
	assert.False(t, v.RemoveCompare("a"))
	assert.Equal(t, []reconcile.User{{ID: "b"}}, v.Compare())
}

func TestView_RenderMemoizes(t *testing.T) {
	chars := []reconcile.Character{
		{ID: "1", Name: "Rem"},
		{ID: "2", Name: "Emilia"},
	}
	v := NewView(reconcile.User{ID: "p", Characters: chars}, chars)

	first, recomputed := v.Render()
	assert.True(t, recomputed)
	assert.Len(t, first.Characters, 2)

	_, recomputed = v.Render()
	assert.False(t, recomputed)

	v.SetMedia(10, []reconcile.Character{{ID: "1", Name: "Rem"}, {ID: "3", Name: "Ram"}})
	withMedia, recomputed := v.Render()
	assert.True(t, recomputed)
	assert.Equal(t, 1, withMedia.Summary.Owned)
	assert.Equal(t, 1, withMedia.Summary.Missing)
	assert.Equal(t, int64(10), v.MediaID())

	v.ClearMedia()
	cleared, _ := v.Render()
	assert.Equal(t, 2, cleared.Summary.Owned)
	assert.Equal(t, 0, cleared.Summary.Missing)

	v.SetSearch("em")
	v.SetCap(1)
	narrowed, _ := v.Render()
	require.Len(t, narrowed.Characters, 1)
	assert.Equal(t, "Emilia", narrowed.Characters[0].Name)
}

func TestView_EmptyRosterIsAMediaSelection(t *testing.T) {
	chars := []reconcile.Character{{ID: "1", Name: "Rem"}}
	v := NewView(reconcile.User{ID: "p", Characters: chars}, chars)
	v.SetMedia(99, nil)

	res, _ := v.Render()
	assert.Len(t, res.Characters, 1, "an empty roster matches everything")
	assert.NotNil(t, v.Input().Roster)
}
