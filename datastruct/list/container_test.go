package list

import (
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func TestContainerView(t *testing.T) {
	l := Of(3, 1, 2)
	c := l.Container()

	assert.False(t, c.Empty())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []interface{}{3, 1, 2}, c.Values())
	assert.Equal(t, "ForwardList\n3, 1, 2", c.String())

	assert.Equal(t, []interface{}{1, 2, 3}, containers.GetSortedValues(c, utils.IntComparator))
	requireValues(t, l, []int{3, 1, 2})

	c.Clear()
	assert.True(t, l.Empty())
	assert.True(t, c.Empty())
}

func TestFromComparator(t *testing.T) {
	words := Of("the", "frogurt", "is", "also", "cursed")
	words.SortFunc(FromComparator[string](utils.StringComparator))
	requireValues(t, words, []string{"also", "cursed", "frogurt", "is", "the"})

	other := Of("apple", "zebra")
	words.MergeFunc(other, FromComparator[string](utils.StringComparator))
	requireValues(t, words, []string{"also", "apple", "cursed", "frogurt", "is", "the", "zebra"})
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", New[int]().String())
	assert.Equal(t, "[1, 2, 3]", Of(1, 2, 3).String())
	assert.Equal(t, "[the, frogurt]", Of("the", "frogurt").String())
}
