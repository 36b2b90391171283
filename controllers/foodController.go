package controllers

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/Mehedihasan444/restuarent-management-server-side/database"
	"github.com/Mehedihasan444/restuarent-management-server-side/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var foodCollection *mongo.Collection = database.OpenCollection(database.Client, "Foods")
var validate = validator.New()

// foodListParams holds the raw query-string parameters of the food
// listing endpoint. Every field is optional; absent fields impose no
// constraint on the result.
type foodListParams struct {
	Category  string
	SortField string
	SortOrder string
	Page      string
	Limit     string
	FoodName  string
}

// filter combines the exact category match with a case-insensitive
// substring match on the food name, AND semantics. The search term is
// quoted so it always matches literally.
func (p foodListParams) filter() bson.M {
	filter := bson.M{}
	if p.Category != "" {
		filter["foodCategory"] = p.Category
	}
	if p.FoodName != "" {
		filter["foodName"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.FoodName), Options: "i"}
	}
	return filter
}

// sortDirection maps the accepted order spellings onto Mongo sort
// values.
func sortDirection(order string) (int, bool) {
	switch order {
	case "asc", "ascending", "1":
		return 1, true
	case "desc", "descending", "-1":
		return -1, true
	}
	return 0, false
}

// findOptions applies sorting only when both sortField and sortOrder
// are present, and pagination only when both page and limit parse.
// skip = (page-1)*limit with no lower-bound clamping: page 0 or a
// negative limit pass straight through to the driver.
func (p foodListParams) findOptions() *options.FindOptions {
	opts := options.Find()

	if p.SortField != "" && p.SortOrder != "" {
		if direction, ok := sortDirection(p.SortOrder); ok {
			opts.SetSort(bson.D{{Key: p.SortField, Value: direction}})
		}
	}

	page, pageErr := strconv.Atoi(p.Page)
	limit, limitErr := strconv.Atoi(p.Limit)
	if pageErr == nil && limitErr == nil {
		opts.SetSkip(int64((page - 1) * limit))
		opts.SetLimit(int64(limit))
	}

	return opts
}

// GetFoods returns one page of the food collection under the listing
// filter, plus the collection's estimated total size. The count is
// deliberately the unfiltered estimate, not the filtered total.
func GetFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		params := foodListParams{
			Category:  c.Query("category"),
			SortField: c.Query("sortField"),
			SortOrder: c.Query("sortOrder"),
			Page:      c.Query("page"),
			Limit:     c.Query("limit"),
			FoodName:  c.Query("foodName"),
		}

		cursor, err := foodCollection.Find(ctx, params.filter(), params.findOptions())
		if err != nil {
			log.Println("error listing foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}

		var foods []models.Food
		if err = cursor.All(ctx, &foods); err != nil {
			log.Println("error decoding foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}
		if foods == nil {
			foods = []models.Food{}
		}

		count, err := foodCollection.EstimatedDocumentCount(ctx)
		if err != nil {
			log.Println("error counting foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while counting food items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": foods, "count": count})
	}
}

// GetFoodDetails fetches a single food by its id.
func GetFoodDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("foodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
			return
		}

		var food models.Food
		err = foodCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		if err != nil {
			log.Println("error fetching food:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while fetching the food"})
			return
		}
		c.JSON(http.StatusOK, food)
	}
}

// CreateFood inserts a new food item.
func CreateFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var food models.Food

		if err := c.BindJSON(&food); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		validationErr := validate.Struct(food)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		result, insertErr := foodCollection.InsertOne(ctx, food)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Food item was not created"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateFoodStock sets quantity and sellCount only, upserting when no
// document matches. This is the post-purchase decrement path, kept
// separate from the general food update.
func UpdateFoodStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("foodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
			return
		}

		var food models.Food
		if err := c.BindJSON(&food); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "quantity", Value: food.Quantity})
		updateObj = append(updateObj, bson.E{Key: "sellCount", Value: food.SellCount})

		upsert := true
		opt := options.UpdateOptions{
			Upsert: &upsert,
		}
		filter := bson.M{"_id": id}

		result, err := foodCollection.UpdateOne(
			ctx,
			filter,
			bson.D{
				{Key: "$set", Value: updateObj},
			},
			&opt,
		)
		if err != nil {
			log.Println("error updating food stock:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Food stock update failed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateFood replaces the editable food fields, upserting when no
// document matches.
func UpdateFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("foodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
			return
		}

		var food models.Food
		if err := c.BindJSON(&food); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if food.FoodName != nil {
			updateObj = append(updateObj, bson.E{Key: "foodName", Value: food.FoodName})
		}
		if food.FoodImage != nil {
			updateObj = append(updateObj, bson.E{Key: "foodImage", Value: food.FoodImage})
		}
		if food.FoodCategory != nil {
			updateObj = append(updateObj, bson.E{Key: "foodCategory", Value: food.FoodCategory})
		}
		if food.Quantity != nil {
			updateObj = append(updateObj, bson.E{Key: "quantity", Value: food.Quantity})
		}
		if food.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: food.Price})
		}
		if food.FoodOrigin != nil {
			updateObj = append(updateObj, bson.E{Key: "foodOrigin", Value: food.FoodOrigin})
		}
		if food.ShortDescription != nil {
			updateObj = append(updateObj, bson.E{Key: "shortDescription", Value: food.ShortDescription})
		}

		upsert := true
		opt := options.UpdateOptions{
			Upsert: &upsert,
		}
		filter := bson.M{"_id": id}

		result, err := foodCollection.UpdateOne(
			ctx,
			filter,
			bson.D{
				{Key: "$set", Value: updateObj},
			},
			&opt,
		)
		if err != nil {
			log.Println("error updating food:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Food item update failed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteFood removes one food by id.
func DeleteFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("foodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
			return
		}

		result, err := foodCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Println("error deleting food:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Food item was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetAddedFoods lists the foods a user has added, with an optional
// single-food lookup when foodId is supplied alongside.
func GetAddedFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		userEmail := c.Query("userEmail")
		if userEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User email is required."})
			return
		}

		var single *models.Food
		if foodId := c.Query("foodId"); foodId != "" {
			id, err := primitive.ObjectIDFromHex(foodId)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
				return
			}
			var food models.Food
			err = foodCollection.FindOne(ctx, bson.M{"_id": id, "userEmail": userEmail}).Decode(&food)
			if err != nil && err != mongo.ErrNoDocuments {
				log.Println("error fetching added food:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while fetching the food"})
				return
			}
			if err == nil {
				single = &food
			}
		}

		cursor, err := foodCollection.Find(ctx, bson.M{"userEmail": userEmail})
		if err != nil {
			log.Println("error listing added foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}
		var foods []models.Food
		if err = cursor.All(ctx, &foods); err != nil {
			log.Println("error decoding added foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}
		if foods == nil {
			foods = []models.Food{}
		}

		c.JSON(http.StatusOK, gin.H{"result": foods, "SingleResult": single})
	}
}

// GetTopSellingFoods lists every food, best sellers first.
func GetTopSellingFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "sellCount", Value: -1}})
		cursor, err := foodCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			log.Println("error listing top selling foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}

		var foods []models.Food
		if err = cursor.All(ctx, &foods); err != nil {
			log.Println("error decoding top selling foods:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing food items"})
			return
		}
		if foods == nil {
			foods = []models.Food{}
		}
		c.JSON(http.StatusOK, foods)
	}
}
