package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFoodListFilterEmpty(t *testing.T) {
	filter := foodListParams{}.filter()
	assert.Empty(t, filter, "absent parameters must impose no constraint")
}

func TestFoodListFilterCategory(t *testing.T) {
	filter := foodListParams{Category: "Dessert"}.filter()
	assert.Equal(t, bson.M{"foodCategory": "Dessert"}, filter)
}

func TestFoodListFilterFoodName(t *testing.T) {
	filter := foodListParams{FoodName: "Burger"}.filter()

	regex, ok := filter["foodName"].(primitive.Regex)
	require.True(t, ok, "foodName must match via regex")
	assert.Equal(t, "Burger", regex.Pattern)
	assert.Equal(t, "i", regex.Options, "substring match must be case-insensitive")
}

func TestFoodListFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := foodListParams{FoodName: "mac.n.cheese (large)"}.filter()

	regex := filter["foodName"].(primitive.Regex)
	assert.Equal(t, `mac\.n\.cheese \(large\)`, regex.Pattern,
		"search term must match literally, not as a pattern")
}

func TestFoodListFilterCombinesWithAnd(t *testing.T) {
	filter := foodListParams{Category: "Dessert", FoodName: "cake"}.filter()

	assert.Len(t, filter, 2)
	assert.Equal(t, "Dessert", filter["foodCategory"])
	assert.Equal(t, "cake", filter["foodName"].(primitive.Regex).Pattern)
}

func TestSortDirection(t *testing.T) {
	for order, want := range map[string]int{
		"asc": 1, "ascending": 1, "1": 1,
		"desc": -1, "descending": -1, "-1": -1,
	} {
		direction, ok := sortDirection(order)
		assert.True(t, ok, order)
		assert.Equal(t, want, direction, order)
	}

	_, ok := sortDirection("sideways")
	assert.False(t, ok)
}

func TestFindOptionsNoSortUnlessBothGiven(t *testing.T) {
	assert.Nil(t, foodListParams{SortField: "price"}.findOptions().Sort,
		"sortField alone must not sort")
	assert.Nil(t, foodListParams{SortOrder: "asc"}.findOptions().Sort,
		"sortOrder alone must not sort")

	opts := foodListParams{SortField: "price", SortOrder: "desc"}.findOptions()
	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, opts.Sort)
}

func TestFindOptionsPagination(t *testing.T) {
	opts := foodListParams{Page: "3", Limit: "10"}.findOptions()

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip, "skip = (page-1)*limit")
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestFindOptionsFirstPage(t *testing.T) {
	opts := foodListParams{Page: "1", Limit: "2"}.findOptions()

	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(2), *opts.Limit)
}

func TestFindOptionsNoClamping(t *testing.T) {
	// page 0 is passed through unclamped; the caller owns the
	// resulting undefined behavior.
	opts := foodListParams{Page: "0", Limit: "5"}.findOptions()

	assert.Equal(t, int64(-5), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
}

func TestFindOptionsAbsentPagination(t *testing.T) {
	opts := foodListParams{}.findOptions()
	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)

	// a lone page or limit is ignored rather than half-applied
	assert.Nil(t, foodListParams{Page: "2"}.findOptions().Skip)
	assert.Nil(t, foodListParams{Limit: "5"}.findOptions().Limit)
}
