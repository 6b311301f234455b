package handlers

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PageSize = 20

// BuildBookQuery translates the keyword/order/page request parameters
// into a Mongo filter, sort and skip/limit window.
func BuildBookQuery(keyword, order, page string) (filter bson.M, sort bson.D, skip, limit int64) {
	filter = bson.M{}
	if keyword != "" {
		re := KeywordRegex(keyword)
		filter = bson.M{"$or": bson.A{
			bson.M{"title": re},
			bson.M{"authors": re},
		}}
	}

	sort = bookSort(order)

	pageNum, err := strconv.Atoi(page)
	if err != nil || pageNum < 1 {
		pageNum = 1
	}

	return filter, sort, int64(pageNum-1) * PageSize, PageSize
}

// KeywordRegex matches the keyword as a whole word, case-insensitive.
// The keyword itself is quoted so regex metacharacters in user input
// stay literal.
func KeywordRegex(keyword string) primitive.Regex {
	return primitive.Regex{
		Pattern: `\b` + regexp.QuoteMeta(keyword) + `\b`,
		Options: "i",
	}
}

func bookSort(order string) bson.D {
	switch order {
	case "highest":
		return bson.D{{Key: "average_rating", Value: -1}}
	case "lowest":
		return bson.D{{Key: "average_rating", Value: 1}}
	case "longest":
		return bson.D{{Key: "num_pages", Value: -1}}
	case "shortest":
		return bson.D{{Key: "num_pages", Value: 1}}
	default:
		return bson.D{{Key: "bookID", Value: 1}}
	}
}
